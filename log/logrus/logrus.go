// Package logrus adapts sirupsen/logrus to the regioncache Logger interface.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/jlpedrosa/regioncache"
)

type LogrusLogger struct{ E *logrus.Entry }

var _ regioncache.Logger = LogrusLogger{}

func (l LogrusLogger) Debug(msg string, f regioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}

func (l LogrusLogger) Info(msg string, f regioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Info(msg)
}

func (l LogrusLogger) Warn(msg string, f regioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Warn(msg)
}

func (l LogrusLogger) Error(msg string, f regioncache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
