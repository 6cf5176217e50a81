package logging

import (
	"sync"

	"github.com/rs/zerolog"
)

type Logging struct {
	l *zerolog.Logger
	f func(zerolog.Context) zerolog.Context
	sync.RWMutex
}

// NewLogging returns Logging with disabled logger; f decorates the logger
// context whenever a new logger is set.
func NewLogging(f func(zerolog.Context) zerolog.Context) *Logging {
	if f == nil {
		f = func(c zerolog.Context) zerolog.Context { return c } //revive:disable-line:modifies-parameter
	}

	l := zerolog.Nop()

	return &Logging{l: &l, f: f}
}

func (l *Logging) Log() *zerolog.Logger {
	l.RLock()
	defer l.RUnlock()

	return l.l
}

func (l *Logging) SetLogger(zl zerolog.Logger) *Logging {
	l.Lock()
	defer l.Unlock()

	nl := l.f(zl.With()).Logger()
	l.l = &nl

	return l
}

// SetLogging sets the logger of the given Logging with this context.
func (l *Logging) SetLogging(i *Logging) *Logging {
	return l.SetLogger(*i.Log())
}
