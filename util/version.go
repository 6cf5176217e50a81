package util

import (
	"strings"

	semver "github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	stdsemver "golang.org/x/mod/semver"
)

type Version struct {
	s          string
	prerelease string
	major      uint64
	minor      uint64
	patch      uint64
}

// EnsureParseVersion parses the version string, but does not check
// IsValid().
func EnsureParseVersion(s string) Version {
	if !strings.HasPrefix(s, "v") {
		return Version{}
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}
	}

	return newVersion(v)
}

// ParseVersion parses the version string and also checks IsValid().
func ParseVersion(s string) (Version, error) {
	if !strings.HasPrefix(s, "v") {
		return Version{}, ErrInvalid.Errorf("invalid version string, %q", s)
	}

	v, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, ErrInvalid.Wrapf(err, "version string=%q", s)
	}

	p := newVersion(v)
	if err := p.IsValid(nil); err != nil {
		return Version{}, err
	}

	return p, nil
}

func newVersion(v *semver.Version) Version {
	return Version{
		s:          "v" + v.String(),
		major:      v.Major(),
		minor:      v.Minor(),
		patch:      v.Patch(),
		prerelease: v.Prerelease(),
	}
}

func (v Version) String() string { return v.s }

func (v Version) IsValid([]byte) error {
	switch s := strings.TrimSpace(v.s); {
	case len(s) < 2: //nolint:gomnd //...
		return ErrInvalid.Errorf("empty version string")
	case !strings.HasPrefix(s, "v"):
		return ErrInvalid.Errorf("invalid version string, %q", s)
	case !stdsemver.IsValid(s):
		return ErrInvalid.Errorf("invalid semver, %q", s)
	default:
		return nil
	}
}

func (v Version) Major() uint64 { return v.major }

func (v Version) Minor() uint64 { return v.minor }

func (v Version) Patch() uint64 { return v.patch }

func (v Version) Prerelease() string { return v.prerelease }

func (v Version) IsEmpty() bool {
	return len(v.s) < 1
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.s), nil
}

func (v *Version) UnmarshalText(b []byte) error {
	u, err := ParseVersion(string(b))
	if err != nil {
		return errors.WithMessage(err, "failed to unmarshal version")
	}

	*v = u

	return nil
}
