package logger

import (
	"context"

	"go.uber.org/zap"
)

// ZapLogger — обёртка над zap, реализующая ports.Logger.
type ZapLogger struct {
	base  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewZapLogger — конструктор; isProd переключает production/development пресеты.
// Возвращает логгер и функцию финализации (Sync).
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		base *zap.Logger
		err  error
	)

	if isProd {
		base, err = zap.NewProduction()
	} else {
		base, err = zap.NewDevelopment()
	}
	if err != nil {
		return nil, nil, err
	}

	wrapped := &ZapLogger{
		base:  base,
		sugar: base.Sugar(),
	}
	cleanup := func() error { return wrapped.base.Sync() }
	return wrapped, cleanup, nil
}

func (z *ZapLogger) Infof(_ context.Context, format string, args ...any) {
	z.sugar.Infof(format, args...)
}

func (z *ZapLogger) Warnf(_ context.Context, format string, args ...any) {
	z.sugar.Warnf(format, args...)
}

func (z *ZapLogger) Errorf(_ context.Context, format string, args ...any) {
	z.sugar.Errorf(format, args...)
}

func (z *ZapLogger) Base() *zap.Logger { return z.base }
