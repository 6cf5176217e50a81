package launch

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/pkg/errors"
	"github.com/spikeekips/countdown/countdown"
)

// Display shows the countdown on the terminal. The current count is
// rewritten in place; the end message is printed once.
type Display struct {
	live   *uilive.Writer
	out    io.Writer
	endc   *color.Color
	title  string
	endmsg string
	sync.Mutex
}

func NewDisplay(out io.Writer, title string, nocolor bool) *Display {
	live := uilive.New()
	live.Out = out

	endc := color.New(color.FgGreen, color.Bold)
	if nocolor {
		endc.DisableColor()
	}

	return &Display{
		live:   live,
		out:    out,
		endc:   endc,
		title:  title,
		endmsg: "finished!",
	}
}

// Attach sets the display callbacks to the options; the callbacks already
// set are still called after the display ones.
func (d *Display) Attach(opts countdown.Options) countdown.Options {
	n := opts.Merge()

	onStart, onEachCount, onEnd := n.OnStart, n.OnEachCount, n.OnEnd

	n.OnStart = func() error {
		if err := d.OnStart(); err != nil {
			return err
		}

		return onStart()
	}

	n.OnEachCount = func(remaining int) error {
		if err := d.OnEachCount(remaining); err != nil {
			return err
		}

		return onEachCount(remaining)
	}

	n.OnEnd = func() error {
		if err := d.OnEnd(); err != nil {
			return err
		}

		return onEnd()
	}

	return n
}

func (d *Display) OnStart() error {
	d.Lock()
	defer d.Unlock()

	if len(d.title) < 1 {
		return nil
	}

	_, err := fmt.Fprintln(d.out, d.title)

	return errors.WithStack(err)
}

func (d *Display) OnEachCount(remaining int) error {
	d.Lock()
	defer d.Unlock()

	if _, err := fmt.Fprintf(d.live, "%d\n", remaining); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(d.live.Flush())
}

func (d *Display) OnEnd() error {
	d.Lock()
	defer d.Unlock()

	_, err := d.endc.Fprintln(d.out, d.endmsg)

	return errors.WithStack(err)
}
