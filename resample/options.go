package resample

import (
	"log/slog"
	"math"

	"github.com/srlehn/pnmscale/internal/errors"
	"github.com/srlehn/pnmscale/internal/logx"
	"github.com/srlehn/pnmscale/kernel"
)

type Option interface {
	ApplyOption(s *Settings) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Settings) error

func (o OptFunc) ApplyOption(s *Settings) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Settings) error { return s.SetOptions([]Option(o)...) }

// Settings is the resolved configuration of a single resample call.
type Settings struct {
	// Workers is the number of goroutines output rows are spread over.
	// Values below 2 resample on the calling goroutine.
	Workers int
	// CubicA is the cubic convolution coefficient.
	CubicA float64
	Log    *slog.Logger
	// Progress is called after each finished output row with the number of
	// finished rows. It may be called concurrently when Workers > 1.
	Progress func(done, total int)
	// MemoryLimit caps the output size in bytes. 0 means no limit.
	MemoryLimit int
}

var _ logx.LoggerProvider = (*Settings)(nil)

func (s *Settings) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.Log
}

func defaultSettings() *Settings {
	return &Settings{
		Workers: 1,
		CubicA:  kernel.DefaultCubicA,
	}
}

// Resolve applies opts on top of the defaults.
func Resolve(opts ...Option) (*Settings, error) {
	s := defaultSettings()
	if err := s.SetOptions(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) SetOptions(opts ...Option) error {
	if s == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func WithWorkers(n int) Option {
	return OptFunc(func(s *Settings) error {
		if n < 0 {
			return errors.Errorf(`negative worker count %d`, n)
		}
		s.Workers = max(n, 1)
		return nil
	})
}

// WithCubicCoefficient sets the parameter a of the cubic convolution
// kernel. Common values lie between -1 and -0.5.
func WithCubicCoefficient(a float64) Option {
	return OptFunc(func(s *Settings) error {
		if math.IsNaN(a) || a > 0 || a < -3 {
			return errors.Errorf(`cubic coefficient %v out of range [-3,0]`, a)
		}
		s.CubicA = a
		return nil
	})
}

func WithLogger(logger *slog.Logger) Option {
	return OptFunc(func(s *Settings) error {
		s.Log = logger
		return nil
	})
}

func WithProgress(fn func(done, total int)) Option {
	return OptFunc(func(s *Settings) error {
		s.Progress = fn
		return nil
	})
}

func WithMemoryLimit(bytes int) Option {
	return OptFunc(func(s *Settings) error {
		if bytes < 0 {
			return errors.Errorf(`negative memory limit %d`, bytes)
		}
		s.MemoryLimit = bytes
		return nil
	})
}
