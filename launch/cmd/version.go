package launchcmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/pkg/errors"
	"github.com/spikeekips/countdown/launch"
	"github.com/spikeekips/countdown/util"
)

type VersionCommand struct {
	Out io.Writer `kong:"-"`
}

func (cmd *VersionCommand) Run(pctx context.Context) error {
	v, err := util.LoadFromContextOK[util.Version](pctx, launch.VersionContextKey)
	if err != nil {
		return err
	}

	if err := v.IsValid(nil); err != nil {
		return err
	}

	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	_, err = fmt.Fprintf(out, "version: %s\ngo: %s %s/%s\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)

	return errors.WithStack(err)
}
