// Package logging configures the process-wide logrus logger. Packages create their own
// entry with logrus.WithField("component", ...).
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// DefaultLevel is used when the requested level cannot be parsed.
const DefaultLevel = logrus.InfoLevel

// Setup sets the global logrus level, formatter and output. An empty or invalid level falls
// back to DefaultLevel.
func Setup(level string, out io.Writer) logrus.Level {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = DefaultLevel
	}
	if out == nil {
		out = os.Stderr
	}

	logrus.SetOutput(out)
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return parsed
}
