package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logging interface used across the service.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds the zap-backed Logger from config. Invalid levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && cfg.Encoding == "console" {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		Development:       cfg.Mode == "debug",
		Encoding:          cfg.Encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: cfg.Mode != "debug",
	}
	if zapCfg.Encoding == "" {
		zapCfg.Encoding = "console"
	}

	base, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		base = zap.NewNop()
	}

	return &zapLogger{sugar: base.Sugar()}
}

// NewNop returns a Logger that discards everything, for tests.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

func (l *zapLogger) Debug(ctx context.Context, args ...any)  { l.sugar.Debug(args...) }
func (l *zapLogger) Info(ctx context.Context, args ...any)   { l.sugar.Info(args...) }
func (l *zapLogger) Warn(ctx context.Context, args ...any)   { l.sugar.Warn(args...) }
func (l *zapLogger) Error(ctx context.Context, args ...any)  { l.sugar.Error(args...) }
func (l *zapLogger) DPanic(ctx context.Context, args ...any) { l.sugar.DPanic(args...) }
func (l *zapLogger) Panic(ctx context.Context, args ...any)  { l.sugar.Panic(args...) }
func (l *zapLogger) Fatal(ctx context.Context, args ...any)  { l.sugar.Fatal(args...) }

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

func (l *zapLogger) DPanicf(ctx context.Context, format string, args ...any) {
	l.sugar.DPanicf(format, args...)
}

func (l *zapLogger) Panicf(ctx context.Context, format string, args ...any) {
	l.sugar.Panicf(format, args...)
}

func (l *zapLogger) Fatalf(ctx context.Context, format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
