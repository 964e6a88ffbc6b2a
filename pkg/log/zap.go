package log

import "go.uber.org/zap"

// zapLogger adapts a *zap.SugaredLogger to the Logger interface so that the
// CLI can opt into structured logging (--json-logs) without the core ever
// importing zap directly.
type zapLogger struct {
	level string
	s     *zap.SugaredLogger
}

// NewZapLogger wraps z as a Logger reporting at the given level name, used
// for Printf/Println call sites that don't otherwise carry a severity.
func NewZapLogger(z *zap.Logger, level string) Logger {
	return &zapLogger{level: level, s: z.Sugar()}
}

func (l *zapLogger) Printf(format string, args ...interface{}) {
	switch l.level {
	case "debug":
		l.s.Debugf(format, args...)
	default:
		l.s.Infof(format, args...)
	}
}

func (l *zapLogger) Println(args ...interface{}) {
	switch l.level {
	case "debug":
		l.s.Debug(args...)
	default:
		l.s.Info(args...)
	}
}

// SetZapLoggers wires all three codec loggers to z, a production or
// development zap.Logger constructed by the caller.
func SetZapLoggers(z *zap.Logger) {
	SetDebugLogger(NewZapLogger(z, "debug"))
	SetInfoLogger(NewZapLogger(z, "info"))
	SetTraceLogger(NewZapLogger(z, "debug"))
}
