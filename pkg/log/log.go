package log

import (
	"github.com/sirupsen/logrus"
)

func InitLogs() *logrus.Logger {
	log := logrus.New()

	log.SetReportCaller(true)

	return log
}

// WithCommand creates a logger tagged with the subcommand being run.
func WithCommand(command string, inner logrus.FieldLogger) logrus.FieldLogger {
	return inner.WithField("command", command)
}
