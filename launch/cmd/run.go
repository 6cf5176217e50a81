package launchcmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spikeekips/countdown/countdown"
	"github.com/spikeekips/countdown/launch"
	"github.com/spikeekips/countdown/util"
	"golang.org/x/sync/errgroup"
)

type RunCommand struct {
	BaseCommand
	DesignFlags
	Title   string    `name:"title" default:"Contador" help:"title shown before counting"`
	Quiet   bool      `name:"quiet" help:"do not show counts"`
	NoColor bool      `name:"no-color" help:"disable colored output"`
	Out     io.Writer `kong:"-"`
}

func (cmd *RunCommand) Run(pctx context.Context) error {
	if err := cmd.prepare(pctx); err != nil {
		return err
	}

	d, err := cmd.CountdownDesign()
	if err != nil {
		return err
	}

	cmd.Log.Debug().Interface("design", d).Msg("flags")

	ctx, stop := signal.NotifyContext(pctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	timer, err := countdown.New(cmd.options(d))
	if err != nil {
		return err
	}

	cmd.Log.Info().Stringer("timer", timer.ID()).Int("time", d.Time).Msg("countdown starting")

	if err := timer.Start(pctx); err != nil {
		return err
	}

	if err := cmd.watch(ctx, stop, timer); err != nil {
		return err
	}

	l := cmd.Log.Info().Stringer("timer", timer.ID()).Stringer("state", timer.State())
	if err := timer.Err(); err != nil {
		l = l.Err(err)
	}

	l.Msg("countdown done")

	return timer.Err()
}

// watch stops the timer when ctx is done by signal and returns after the
// countdown is over.
func (cmd *RunCommand) watch(ctx context.Context, stop func(), timer *countdown.Timer) error {
	var eg errgroup.Group

	eg.Go(func() error {
		<-timer.Done()
		stop()

		return nil
	})

	eg.Go(func() error {
		<-ctx.Done()

		if timer.State() != countdown.StateRunning {
			return nil
		}

		cmd.Log.Info().Stringer("timer", timer.ID()).Msg("countdown interrupted")

		if err := timer.Stop(); err != nil && !errors.Is(err, util.ErrDaemonAlreadyStopped) {
			return err
		}

		return nil
	})

	return eg.Wait()
}

func (cmd *RunCommand) options(d launch.CountdownDesign) countdown.Options {
	opts := d.Options()
	opts.Logging = cmd.Logging

	if cmd.Quiet {
		return opts
	}

	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	return launch.NewDisplay(out, cmd.Title, cmd.NoColor).Attach(opts)
}
