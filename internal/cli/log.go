package cli

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// EnvDebug enables debug logging when set to any non-empty value, so
// deployments can turn on verbose output without editing service args.
const EnvDebug = "FLOWBOARD_DEBUG"

// LevelFromEnv returns the initial log level: debug when FLOWBOARD_DEBUG
// is set, info otherwise. The --verbose flag can still raise the level.
func LevelFromEnv() log.Level {
	if os.Getenv(EnvDebug) != "" {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with
// elapsed duration. Safe for sequential use by a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since the tracker was created.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
