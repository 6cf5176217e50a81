package countdown

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spikeekips/countdown/util/logging"
)

var DefaultSpeed = time.Second

// Options configures one countdown run. Zero values mean "not given" and are
// replaced by defaults in Merge; so Debug false and an omitted Debug are the
// same.
type Options struct {
	// OnStart is called once in Start, before any tick is scheduled.
	OnStart func() error
	// OnEachCount is called for every tick with the remaining count, from
	// Time-1 down to 0.
	OnEachCount func(remaining int) error
	// OnEnd is called once, right after OnEachCount of the 0 tick.
	OnEnd func() error
	// Clock makes the ticker; RealClock by default.
	Clock Clock
	// Logging receives the debug diagnostics and callback failures. When nil,
	// the global zerolog logger is used.
	Logging *logging.Logging
	// Time is the number of ticks.
	Time int
	// Speed is the interval between ticks.
	Speed time.Duration
	Debug bool
}

func (o Options) Merge() Options {
	n := o

	if n.Speed == 0 {
		n.Speed = DefaultSpeed
	}

	if n.OnStart == nil {
		n.OnStart = func() error { return nil }
	}

	if n.OnEachCount == nil {
		n.OnEachCount = func(int) error { return nil }
	}

	if n.OnEnd == nil {
		n.OnEnd = func() error { return nil }
	}

	if n.Clock == nil {
		n.Clock = RealClock{}
	}

	return n
}

func (o Options) IsValid([]byte) error {
	e := ErrInvalidOptions.Errorf

	switch {
	case o.Time < 0:
		return e("negative time, %d", o.Time)
	case o.Speed < 0:
		return e("negative speed, %v", o.Speed)
	case o.Speed == 0:
		return e("empty speed")
	case o.OnStart == nil, o.OnEachCount == nil, o.OnEnd == nil:
		return e("empty callback")
	case o.Clock == nil:
		return e("empty clock")
	default:
		return nil
	}
}

func (o Options) MarshalZerologObject(e *zerolog.Event) {
	e.
		Int("time", o.Time).
		Dur("speed", o.Speed).
		Bool("debug", o.Debug).
		Bool("on_start", o.OnStart != nil).
		Bool("on_each_count", o.OnEachCount != nil).
		Bool("on_end", o.OnEnd != nil)
}
