package countdown

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spikeekips/countdown/util"
	"github.com/spikeekips/countdown/util/logging"
)

type TimerID string

func (ti TimerID) String() string {
	return string(ti)
}

// Timer counts down from Options.Time to 0. A Timer runs only once; after it
// is finished or stopped it can not be started again.
type Timer struct {
	*logging.Logging
	daemon    *util.ContextDaemon
	ticker    Ticker
	err       error
	cancel    func()
	donech    chan struct{}
	id        TimerID
	opts      Options
	state     State
	once      sync.Once
	scheduled bool
	ticking   bool
	stopping  bool
	sync.RWMutex
}

func New(opts Options) (*Timer, error) {
	o := opts.Merge()

	if err := o.IsValid(nil); err != nil {
		return nil, err
	}

	id := TimerID(util.ULID().String())

	t := &Timer{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "countdown").Stringer("timer", id)
		}),
		id:     id,
		opts:   o,
		state:  StateIdle,
		donech: make(chan struct{}),
	}

	l := log.Logger
	if o.Logging != nil {
		l = *o.Logging.Log()
	}

	if o.Debug && l.GetLevel() > zerolog.DebugLevel {
		l = l.Level(zerolog.DebugLevel)
	}

	_ = t.SetLogger(l)

	t.daemon = util.NewContextDaemon("countdown-"+id.String(), t.start)

	return t, nil
}

// Run starts new Timer. The returned Timer is not nil when only the Start
// failed, so the caller still can check it.
func Run(ctx context.Context, opts Options) (*Timer, error) {
	t, err := New(opts)
	if err != nil {
		return nil, err
	}

	return t, t.Start(ctx)
}

func (t *Timer) ID() TimerID {
	return t.id
}

// Options returns the merged options.
func (t *Timer) Options() Options {
	return t.opts
}

func (t *Timer) State() State {
	t.RLock()
	defer t.RUnlock()

	return t.state
}

// Err returns the last error of the callbacks.
func (t *Timer) Err() error {
	t.RLock()
	defer t.RUnlock()

	return t.err
}

// Done is closed when the countdown is finished or stopped.
func (t *Timer) Done() <-chan struct{} {
	return t.donech
}

func (t *Timer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-t.donech:
		return nil
	}
}

// Start calls OnStart and schedules the ticks. OnStart error stops the
// countdown before any tick. Stop called while OnStart runs stops the
// countdown before any tick.
func (t *Timer) Start(ctx context.Context) error {
	if err := t.running(); err != nil {
		return err
	}

	if t.opts.Debug {
		t.Log().Debug().Object("options", t.opts).Msg("countdown started")
	}

	if err := t.call("start", t.opts.OnStart); err != nil {
		t.failed(err)
		t.finish(StateStopped)

		return err
	}

	if t.opts.Time < 1 {
		if !t.isStopping() {
			t.end()
		}

		t.finish(StateFinished)

		return nil
	}

	sctx, scheduled := t.schedule(ctx)
	if !scheduled {
		t.finish(StateStopped)

		return nil
	}

	return t.daemon.Start(sctx)
}

// Stop cancels the running countdown; no callback starts after Stop returns.
// Stop can be called inside the callbacks; the callback in progress is not
// interrupted.
func (t *Timer) Stop() error {
	t.Lock()

	if t.state != StateRunning || t.stopping {
		s := t.state
		t.Unlock()

		return util.ErrDaemonAlreadyStopped.Errorf("countdown is %s", s)
	}

	t.stopping = true
	scheduled, ticking, cancel := t.scheduled, t.ticking, t.cancel

	t.Unlock()

	if !scheduled { // Start finishes it
		return nil
	}

	cancel()

	if !ticking {
		if err := t.daemon.Stop(); err != nil && !errors.Is(err, util.ErrDaemonAlreadyStopped) {
			return err
		}
	}

	t.finish(StateStopped)

	return nil
}

func (t *Timer) running() error {
	t.Lock()
	defer t.Unlock()

	if t.state != StateIdle {
		return util.ErrDaemonAlreadyStarted.Errorf("countdown is %s", t.state)
	}

	t.state = StateRunning

	return nil
}

func (t *Timer) schedule(ctx context.Context) (context.Context, bool) {
	t.Lock()
	defer t.Unlock()

	if t.stopping {
		return nil, false
	}

	sctx, cancel := context.WithCancel(ctx)

	t.ticker = t.opts.Clock.NewTicker(t.opts.Speed)
	t.cancel = cancel
	t.scheduled = true

	return sctx, true
}

func (t *Timer) isStopping() bool {
	t.RLock()
	defer t.RUnlock()

	return t.stopping
}

func (t *Timer) setTicking(b bool) bool {
	t.Lock()
	defer t.Unlock()

	if b && t.stopping {
		return false
	}

	t.ticking = b

	return true
}

func (t *Timer) start(ctx context.Context) error {
	defer t.ticker.Stop()

	for index := 0; ; index++ {
		select {
		case <-ctx.Done():
			t.finish(StateStopped)

			return errors.WithStack(ctx.Err())
		case <-t.ticker.C():
		}

		if ctx.Err() != nil { // stopped while waiting the tick
			t.finish(StateStopped)

			return errors.WithStack(ctx.Err())
		}

		remaining := t.opts.Time - 1 - index

		if !t.setTicking(true) {
			t.finish(StateStopped)

			return nil
		}

		t.tick(remaining)

		_ = t.setTicking(false)

		switch {
		case remaining < 1:
			t.finish(StateFinished)

			return nil
		case t.isStopping(): // stopped inside callback
			return nil
		}
	}
}

func (t *Timer) tick(remaining int) {
	if err := t.call("each-count", func() error {
		return t.opts.OnEachCount(remaining)
	}); err != nil {
		t.failed(err)
	}

	if t.opts.Debug {
		t.Log().Debug().Int("left", remaining).Msg("countdown tick")
	}

	if remaining < 1 && !t.isStopping() {
		t.end()
	}
}

func (t *Timer) end() {
	if t.opts.Debug {
		t.Log().Debug().Msg("countdown finished")
	}

	if err := t.call("end", t.opts.OnEnd); err != nil {
		t.failed(err)
	}
}

// finish closes the run; once Stop is requested, the run ends as stopped.
func (t *Timer) finish(s State) {
	t.once.Do(func() {
		t.Lock()

		t.state = s
		if t.stopping {
			t.state = StateStopped
		}

		cancel := t.cancel

		t.Unlock()

		if cancel != nil {
			cancel()
		}

		close(t.donech)
	})
}

func (t *Timer) failed(err error) {
	t.Lock()
	t.err = err
	t.Unlock()

	t.Log().Error().Err(err).Msg("countdown callback failed")
}

func (*Timer) call(name string, f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = ErrCallback.Wrapf(errors.Errorf("panic: %v", r), name)
		}
	}()

	if err := f(); err != nil {
		return ErrCallback.Wrapf(err, name)
	}

	return nil
}
