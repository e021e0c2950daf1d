// Package log provides the logging interface used throughout the
// emulator core, along with a logrus backed default implementation.
package log

import "github.com/sirupsen/logrus"

// Logger is the interface components log through. *logrus.Logger
// satisfies it, as does the null logger returned by NewNullLogger.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logrus logger writing plain text at debug level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// WithLevel returns a logrus logger in the same format as New that
// only emits entries at or above the given level.
func WithLevel(level logrus.Level) Logger {
	l := New().(*logrus.Logger)
	l.SetLevel(level)
	return l
}
