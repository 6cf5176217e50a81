package launch

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spikeekips/countdown/countdown"
	"github.com/spikeekips/countdown/util"
	"gopkg.in/yaml.v3"
)

// CountdownDesign is the file form of the countdown options. Callbacks can not
// be given by file; the host attaches them.
type CountdownDesign struct {
	Time  int         `json:"time" yaml:"time"`
	Speed SpeedDesign `json:"speed,omitempty" yaml:"speed,omitempty"`
	Debug bool        `json:"debug,omitempty" yaml:"debug,omitempty"`
}

var designKeys = map[string]struct{}{"time": {}, "speed": {}, "debug": {}}

func LoadCountdownDesign(f string) (d CountdownDesign, _ error) {
	e := util.StringError("failed to load countdown design, %q", f)

	b, err := os.ReadFile(filepath.Clean(f))

	switch {
	case os.IsNotExist(err):
		return d, e(util.ErrNotFound.Wrap(err), "")
	case err != nil:
		return d, e(err, "")
	}

	switch ext := strings.ToLower(filepath.Ext(f)); ext {
	case ".yml", ".yaml":
		d, err = DecodeCountdownDesignYAML(b)
	case ".json":
		d, err = DecodeCountdownDesignJSON(b)
	default:
		return d, e(util.ErrWrongType.Errorf("unknown design file extension, %q", ext), "")
	}

	if err != nil {
		return d, e(err, "")
	}

	return d, nil
}

func DecodeCountdownDesignYAML(b []byte) (d CountdownDesign, _ error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&d); err != nil {
		return d, errors.Wrap(err, "failed to decode yaml design")
	}

	return d, d.IsValid(nil)
}

func DecodeCountdownDesignJSON(b []byte) (d CountdownDesign, _ error) {
	var m map[string]interface{}

	if err := util.UnmarshalJSON(b, &m); err != nil {
		return d, errors.WithMessage(err, "failed to decode json design")
	}

	for k := range m {
		if _, found := designKeys[k]; !found {
			return d, errors.Errorf("unknown key in json design, %q", k)
		}
	}

	if err := util.UnmarshalJSON(b, &d); err != nil {
		return d, errors.WithMessage(err, "failed to decode json design")
	}

	return d, d.IsValid(nil)
}

func (d CountdownDesign) IsValid([]byte) error {
	return util.CheckIsValid(nil, false, d.Options().Merge())
}

// Options returns the countdown options without callbacks.
func (d CountdownDesign) Options() countdown.Options {
	return countdown.Options{
		Time:  d.Time,
		Speed: time.Duration(d.Speed),
		Debug: d.Debug,
	}
}

// SpeedDesign is the interval between ticks. The integer value is
// milliseconds; the string value is the duration string, like "250ms".
type SpeedDesign time.Duration

func (s SpeedDesign) MarshalJSON() ([]byte, error) {
	return util.MarshalJSON(time.Duration(s).String())
}

func (s *SpeedDesign) UnmarshalJSON(b []byte) error {
	i := bytes.TrimSpace(b)

	if len(i) > 0 && i[0] == '"' {
		var v string
		if err := util.UnmarshalJSON(i, &v); err != nil {
			return errors.WithMessage(err, "failed to unmarshal speed")
		}

		return s.parse(v, false)
	}

	return s.parse(string(i), true)
}

func (s SpeedDesign) MarshalYAML() (interface{}, error) {
	return time.Duration(s).String(), nil
}

func (s *SpeedDesign) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return util.ErrWrongType.Errorf("speed should be scalar")
	}

	return s.parse(n.Value, n.Tag == "!!int")
}

func (s *SpeedDesign) parse(v string, isint bool) error {
	if isint {
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return util.ErrWrongType.Wrapf(err, "invalid milliseconds speed, %q", v)
		}

		*s = SpeedDesign(time.Duration(i) * time.Millisecond)

		return nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return util.ErrWrongType.Wrapf(err, "invalid duration speed, %q", v)
	}

	*s = SpeedDesign(d)

	return nil
}
