package launchcmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spikeekips/countdown/util"
	"gopkg.in/yaml.v3"
)

// DesignCommand validates the countdown design and prints it.
type DesignCommand struct {
	BaseCommand
	DesignFlags
	Format string    `name:"format" enum:"yaml, json" default:"yaml" help:"output format: {${enum}}"`
	Out    io.Writer `kong:"-"`
}

func (cmd *DesignCommand) Run(pctx context.Context) error {
	if err := cmd.prepare(pctx); err != nil {
		return err
	}

	d, err := cmd.CountdownDesign()
	if err != nil {
		return err
	}

	var b []byte

	switch cmd.Format {
	case "json":
		b, err = util.MarshalJSONIndent(d)
	default:
		b, err = yaml.Marshal(d)
	}

	if err != nil {
		return errors.WithMessage(err, "failed to marshal design")
	}

	out := cmd.Out
	if out == nil {
		out = os.Stdout
	}

	_, err = fmt.Fprintln(out, strings.TrimSpace(string(b)))

	return errors.WithStack(err)
}
