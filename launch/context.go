package launch

import "github.com/spikeekips/countdown/util"

var (
	LoggingContextKey = util.ContextKey("logging")
	VersionContextKey = util.ContextKey("version")
)
