package pnm

import (
	"errors"
)

var (
	ErrFormat             = errors.New(`pnm: not a binary portable anymap`)
	ErrHeaderSyntax       = errors.New(`pnm: malformed header`)
	ErrTruncatedInput     = errors.New(`pnm: truncated input`)
	ErrUnsupportedVariant = errors.New(`pnm: unsupported variant`)
	ErrVariantMismatch    = errors.New(`pnm: raster channels do not match variant`)
)
