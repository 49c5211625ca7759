package signal

import (
	"github.com/powcheck/powcheck/logs"
)

var log = logs.Disabled

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger *logs.Logger) {
	log = logger
}
