package whatsapp

import (
	waLog "go.mau.fi/whatsmeow/util/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewLogger bridges whatsmeow's logger onto zap. Messages below level are
// dropped; an unparsable level falls back to INFO.
func NewLogger(logger *zap.Logger, level string) waLog.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	return &zapLogger{
		sugar: logger.WithOptions(zap.IncreaseLevel(lvl)).Sugar(),
	}
}

func (l *zapLogger) Debugf(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }
func (l *zapLogger) Infof(msg string, args ...interface{})  { l.sugar.Infof(msg, args...) }
func (l *zapLogger) Warnf(msg string, args ...interface{})  { l.sugar.Warnf(msg, args...) }
func (l *zapLogger) Errorf(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }

func (l *zapLogger) Sub(module string) waLog.Logger {
	return &zapLogger{sugar: l.sugar.Named(module)}
}
