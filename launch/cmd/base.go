package launchcmd

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/spikeekips/countdown/launch"
	"github.com/spikeekips/countdown/util"
	"github.com/spikeekips/countdown/util/logging"
)

type BaseCommand struct {
	Logging *logging.Logging `kong:"-"`
	Log     *zerolog.Logger  `kong:"-"`
}

func (cmd *BaseCommand) prepare(pctx context.Context) error {
	l, err := util.LoadFromContextOK[*logging.Logging](pctx, launch.LoggingContextKey)
	if err != nil {
		return err
	}

	cmd.Logging = l
	cmd.Log = l.Log()

	return nil
}

// DesignFlags builds the countdown design from flags or from the design file.
type DesignFlags struct {
	//revive:disable:struct-tag
	Design string        `name:"design" type:"existingfile" placeholder:"FILE" help:"countdown design file, yaml or json" group:"countdown"`
	Time   int           `name:"time" default:"5" help:"number of counts" group:"countdown"`
	Speed  time.Duration `name:"speed" default:"1s" help:"interval between counts" group:"countdown"`
	Debug  bool          `name:"debug" help:"show countdown diagnostics" group:"countdown"`
	//revive:enable:struct-tag
}

func (f DesignFlags) CountdownDesign() (launch.CountdownDesign, error) {
	if len(f.Design) < 1 {
		d := launch.CountdownDesign{
			Time:  f.Time,
			Speed: launch.SpeedDesign(f.Speed),
			Debug: f.Debug,
		}

		return d, d.IsValid(nil)
	}

	d, err := launch.LoadCountdownDesign(f.Design)
	if err != nil {
		return d, err
	}

	if f.Debug {
		d.Debug = true
	}

	return d, nil
}
