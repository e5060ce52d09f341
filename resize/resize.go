// Package resize defines the Resizer interface shared by the native
// resampler and the third party scaling backends, and a registry the
// backends add themselves to on import.
//
// Import resize/all to register every backend.
package resize

import (
	"errors"
	"image"
	"slices"
	"strings"
	"sync"

	"github.com/iancoleman/strcase"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
)

var ErrUnknownResizer = errors.New(`resize: unknown resizer`)

type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

var (
	mu         sync.RWMutex
	registered = make(map[string]func() Resizer)
)

// Register adds a named constructor. Names are stored in kebab case, a later
// registration under the same name replaces the earlier one.
func Register(name string, newFn func() Resizer) {
	if newFn == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	registered[normalize(name)] = newFn
}

// New returns a fresh instance of the named resizer. Lookup ignores case
// and separators, so "xdraw-catmull-rom" and "xdraw_CatmullRom" match.
func New(name string) (Resizer, error) {
	mu.RLock()
	newFn, ok := registered[normalize(name)]
	mu.RUnlock()
	if !ok {
		return nil, errorsx.Mark(ErrUnknownResizer, `%q`, name)
	}
	return newFn(), nil
}

// Names returns the sorted names of all registered resizers.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registered))
	for n := range registered {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func normalize(name string) string {
	return strcase.ToKebab(strings.TrimSpace(name))
}

// Check validates the resizer arguments the way every backend expects them.
func Check(img image.Image, size image.Point) error {
	if img == nil {
		return errorsx.NilParam()
	}
	if size.X < 1 || size.Y < 1 {
		return errorsx.Errorf(`invalid target size %dx%d`, size.X, size.Y)
	}
	if b := img.Bounds(); b.Empty() {
		return errorsx.Errorf(`empty source image %v`, b)
	}
	return nil
}
