package config

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logg     *logrus.Logger
	loggOnce sync.Once
)

// Logger returns the process-wide logger. Before SetupLogger runs it logs
// text at info level to stdout.
func Logger() *logrus.Logger {
	loggOnce.Do(func() {
		logg = logrus.New()
		logg.SetOutput(os.Stdout)
		logg.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logg.SetLevel(logrus.InfoLevel)
	})
	return logg
}

// SetupLogger applies mode and level: JSON lines in prod, text in dev
func SetupLogger(cfg *Config) *logrus.Logger {
	l := Logger()

	if cfg.IsProd() {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05"})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05"})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		l.WithField("log_level", cfg.LogLevel).Warn("⚠️ Unknown log level, falling back to info")
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	return l
}

// LogError logs err with the module/function it came from
func LogError(logger logrus.FieldLogger, module, funcName string, data any, err error) {
	fields := logrus.Fields{
		"module":   module,
		"funcName": funcName,
	}
	if data != nil {
		fields["data"] = data
	}
	logger.WithFields(fields).Error(err.Error())
}
