package consts

import (
	"errors"
)

var (
	ErrNilImage = errors.New(`nil image`)
)

const (
	LibraryName = `pnmscale`

	// MaxSample is the largest 8-bit sample value.
	MaxSample = 255

	ChannelsGray  = 1
	ChannelsColor = 3
)
