package kernel

import (
	"errors"
	"strings"

	"github.com/iancoleman/strcase"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
)

var ErrUnknownKind = errors.New(`kernel: unknown kind`)

// Kind selects one of the interpolation strategies of the resampler.
type Kind uint8

const (
	Nearest Kind = iota
	Bilinear
	CubicConvolution
)

var kindNames = [...]string{
	Nearest:          `nearest`,
	Bilinear:         `bilinear`,
	CubicConvolution: `cubic`,
}

func (k Kind) String() string {
	if !k.Valid() {
		return `unknown`
	}
	return kindNames[k]
}

func (k Kind) Valid() bool { return int(k) < len(kindNames) }

// Filter returns the weight function of the kind. CubicConvolution uses
// DefaultCubicA.
func (k Kind) Filter() Filter {
	switch k {
	case Nearest:
		return BoxFilter
	case Bilinear:
		return TriangleFilter
	default:
		return CubicFilter(DefaultCubicA)
	}
}

// Kinds lists all valid kinds.
func Kinds() []Kind { return []Kind{Nearest, Bilinear, CubicConvolution} }

// ParseKind is case and separator insensitive: "Cubic-Convolution",
// "cubic_convolution" and "CubicConvolution" all select CubicConvolution.
func ParseKind(s string) (Kind, error) {
	switch strings.ReplaceAll(strcase.ToSnake(strings.TrimSpace(s)), `_`, ``) {
	case `nearest`, `nearestneighbor`, `nearestneighbour`, `nn`, `box`:
		return Nearest, nil
	case `bilinear`, `linear`, `triangle`:
		return Bilinear, nil
	case `cubic`, `cubicconvolution`, `bicubic`, `keys`:
		return CubicConvolution, nil
	}
	return 0, errorsx.Mark(ErrUnknownKind, `%q`, s)
}
