package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger provides leveled logging throughout the application, backed by
// logrus.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a Logger writing to stdout at the given level. An
// unrecognized level falls back to info.
func NewLogger(level string) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &Logger{log: l}
}

func (l *Logger) Info(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log.Debugf(format, args...)
}
