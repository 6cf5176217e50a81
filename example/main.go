package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/spikeekips/countdown/launch"
	launchcmd "github.com/spikeekips/countdown/launch/cmd"
	"github.com/spikeekips/countdown/util"
	"github.com/spikeekips/countdown/util/logging"
)

var version = "v0.0.0"

//revive:disable:nested-structs
var CLI struct {
	Log     launch.LoggingFlags      `embed:"" prefix:"log."`
	Run     launchcmd.RunCommand     `cmd:"" help:"run countdown"`
	Design  launchcmd.DesignCommand  `cmd:"" help:"validate and print countdown design"`
	Version launchcmd.VersionCommand `cmd:"" help:"print version"`
}

//revive:enable:nested-structs

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name(os.Args[0]),
		kong.Description("countdown timer"),
		kong.UsageOnError(),
		kong.Vars(launch.LoggingVars),
	)

	log, err := launch.SetupLoggingFromFlags(CLI.Log)
	if err != nil {
		kctx.FatalIfErrorf(err)
	}

	ll := logging.NewLogging(func(lctx zerolog.Context) zerolog.Context {
		return lctx.Str("module", "main")
	}).SetLogging(log).Log()

	ctx := context.WithValue(context.Background(), launch.LoggingContextKey, log)
	ctx = context.WithValue(ctx, launch.VersionContextKey, util.EnsureParseVersion(version))

	kctx.BindTo(ctx, (*context.Context)(nil))

	ll.Debug().Str("command", kctx.Command()).Msg("start command")

	if err := func() error {
		defer ll.Debug().Msg("stopped")

		return kctx.Run()
	}(); err != nil {
		ll.Error().Err(err).Msg("stopped by error")

		kctx.FatalIfErrorf(err)
	}
}
