package countdown

import "github.com/spikeekips/countdown/util"

var (
	ErrInvalidOptions = util.NewError("invalid countdown options")
	ErrCallback       = util.NewError("countdown callback failed")
)
