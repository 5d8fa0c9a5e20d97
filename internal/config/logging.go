package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the application logger from the log configuration.
// It also applies the same settings to the logrus standard logger,
// which the request middleware logs through.
func NewLogger(cfg LogConfig) *logrus.Logger {
	logger := logrus.New()
	configureLogger(logger, cfg)
	configureLogger(logrus.StandardLogger(), cfg)
	return logger
}

func configureLogger(logger *logrus.Logger, cfg LogConfig) {
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}
