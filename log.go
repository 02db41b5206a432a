// log.go - structured diagnostics for the synth engine

package synth

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	loggerOnce sync.Once
	logger     *log.Logger
)

// Log returns the package-level structured logger, created lazily so
// that importing this package never touches stderr until something
// actually needs to be logged.
func Log() *log.Logger {
	loggerOnce.Do(func() {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			Prefix:          "synth",
			ReportTimestamp: true,
		})
	})
	return logger
}

// SetLogLevel adjusts the verbosity of the package logger, e.g.
// log.FatalLevel to keep output quiet.
func SetLogLevel(level log.Level) {
	Log().SetLevel(level)
}
