package main

import (
	"errors"
	"math"
	"os"

	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/term"

	errorsx "github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/imgio"
	"github.com/srlehn/pnmscale/pnm"
	"github.com/srlehn/pnmscale/raster"
)

// stdio is the path naming stdin or stdout
const stdio = `-`

var errTerminalOutput = errors.New(`refusing to write binary image data to a terminal, redirect stdout`)

// load reads a raster from path or, for "-", a PNM stream from stdin. The
// returned variant is the input variant for PNM sources and the natural
// variant for the channel count otherwise.
func load(path string) (*raster.Raster, pnm.Variant, error) {
	if path == stdio {
		return pnm.Decode(os.Stdin)
	}
	r, ext, err := imgio.Load(path)
	if err != nil {
		return nil, 0, err
	}
	v, err := pnm.ParseVariant(ext)
	if err != nil || v.Channels() != r.Channels() {
		v = pnm.VariantFor(r)
	}
	return r, v, nil
}

// save writes r to path, the format follows the extension. "-" and *.pnm
// write variant v, falling back to the natural variant when the channel
// count changed.
func save(path string, r *raster.Raster, v pnm.Variant) error {
	if !v.Valid() || v.Channels() != r.Channels() {
		v = pnm.VariantFor(r)
	}
	switch {
	case path == stdio:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errorsx.New(errTerminalOutput)
		}
		return pnm.Encode(os.Stdout, r, v)
	case imgio.Format(path) == `pnm`:
		return pnm.EncodeFile(r, v, path)
	}
	return imgio.Save(path, r)
}

// memoryLimit is the byte budget for one output raster, a fraction of the
// currently available system memory. 0 means unlimited.
func memoryLimit(fraction float64, lp logx.LoggerProvider) int {
	if fraction <= 0 {
		return 0
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		logx.Warn(`memory statistics unavailable, no output size limit`, lp, `error`, err)
		return 0
	}
	lim := float64(vm.Available) * fraction
	if lim >= float64(math.MaxInt) {
		return math.MaxInt
	}
	logx.Debug(`memory limit`, lp, `available`, vm.Available, `limit`, int(lim))
	return max(1, int(lim))
}
