package storage

import (
	"go.uber.org/zap"
)

// BadgerLogger routes badger's printf-style logging into zap.
type BadgerLogger struct {
	sugar *zap.SugaredLogger
}

func NewBadgerLogger(logger *zap.Logger) *BadgerLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BadgerLogger{sugar: logger.Named("badger").Sugar()}
}

func (l *BadgerLogger) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}

func (l *BadgerLogger) Warningf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *BadgerLogger) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *BadgerLogger) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}
