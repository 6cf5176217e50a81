package util

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spikeekips/countdown/util/logging"
)

// ContextDaemon runs the callback in a goroutine until the callback returns
// or the daemon is stopped. Stop cancels the callback context and waits for
// the callback to return.
type ContextDaemon struct {
	*logging.Logging
	callback func(context.Context) error
	cancel   func()
	donech   chan struct{}
	sync.RWMutex
}

func NewContextDaemon(name string, callback func(context.Context) error) *ContextDaemon {
	return &ContextDaemon{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "context-daemon").Str("daemon", name)
		}),
		callback: callback,
	}
}

func (dm *ContextDaemon) IsStarted() bool {
	dm.RLock()
	defer dm.RUnlock()

	return dm.cancel != nil
}

func (dm *ContextDaemon) Start(ctx context.Context) error {
	if dm.IsStarted() {
		return ErrDaemonAlreadyStarted.Call()
	}

	_ = dm.Wait(ctx)

	dm.Log().Debug().Msg("started")

	return nil
}

// Wait starts the callback and returns the channel which receives the result
// of callback.
func (dm *ContextDaemon) Wait(ctx context.Context) <-chan error {
	dm.Lock()
	defer dm.Unlock()

	ch := make(chan error, 1)

	if dm.cancel != nil {
		ch <- ErrDaemonAlreadyStarted.Call()
		close(ch)

		return ch
	}

	cctx, cancel := context.WithCancel(ctx)
	donech := make(chan struct{})

	dm.cancel = cancel
	dm.donech = donech

	go func() {
		err := dm.callback(cctx)

		dm.release(donech)

		ch <- err
		close(ch)
	}()

	return ch
}

func (dm *ContextDaemon) Stop() error {
	dm.RLock()
	cancel, donech := dm.cancel, dm.donech
	dm.RUnlock()

	if cancel == nil {
		return ErrDaemonAlreadyStopped.Call()
	}

	cancel()
	<-donech

	dm.Log().Debug().Msg("stopped")

	return nil
}

func (dm *ContextDaemon) release(donech chan struct{}) {
	dm.Lock()

	if dm.donech == donech {
		dm.cancel()

		dm.cancel = nil
		dm.donech = nil
	}

	dm.Unlock()

	close(donech)
}
