// =============================================================================
// UML Models - Logging
// =============================================================================
//
// Structured logging for the pipeline. User-facing results go through the
// console package; the logger carries diagnostics (which diagram was read,
// how many entities were found, where files were written).
//
// =============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when no level or an invalid level is given.
const DefaultLevel = logrus.WarnLevel

// SetupLogging configures a logger writing to out (stderr when nil).
func SetupLogging(levelStr string, out io.Writer) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = DefaultLevel
	}

	if out == nil {
		out = os.Stderr
	}

	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetOutput(out)

	return logger
}

// WithRun tags every entry of a single invocation with a run id.
func WithRun(logger *logrus.Logger, action string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"action": action,
	})
}

// Discard returns a logger that drops everything, for tests.
func Discard() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
