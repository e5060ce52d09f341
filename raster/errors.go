package raster

import (
	"github.com/srlehn/pnmscale/internal/errors"
)

func wrapf(sentinel error, format string, a ...any) error {
	return errors.Mark(sentinel, format, a...)
}
