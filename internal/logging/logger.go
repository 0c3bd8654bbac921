package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the service logger. level must be a logrus level name and format
// either "text" or "json".
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetLevel(lvl)
	if out == nil {
		out = os.Stdout
	}
	logger.SetOutput(out)

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger, nil
}

func LogError(logger logrus.FieldLogger, msg string, err error) {
	logger.WithError(err).Error(msg)
}

func LogFatal(logger logrus.FieldLogger, msg string, err error) {
	logger.WithError(err).Fatal(msg)
}
