package logger

import (
	"context"

	"go.uber.org/zap"

	"github.com/Gunvolt24/product_wizard/pkg/ctxmeta"
)

type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	var (
		logger *zap.Logger
		err    error
	)

	if isProd {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, nil, err
	}

	return wrap(logger, isProd), func() error { return logger.Sync() }, nil
}

// NewFromZap — обёртка над готовым *zap.Logger (тесты, zaptest/observer).
func NewFromZap(l *zap.Logger) *ZapLogger { return wrap(l, false) }

func wrap(l *zap.Logger, isProd bool) *ZapLogger {
	return &ZapLogger{base: l, sugar: l.Sugar(), isProd: isProd}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.with(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.with(ctx).Errorf(format, args...)
}

// with — добавляет request_id/shop/trace_id из контекста, если они есть.
func (z *ZapLogger) with(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	var kv []any
	if id, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		kv = append(kv, "request_id", id)
	}
	if shop, ok := ctxmeta.ShopFromContext(ctx); ok {
		kv = append(kv, "shop", shop)
	}
	if traceID, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		kv = append(kv, "trace_id", traceID)
	}
	if len(kv) == 0 {
		return z.sugar
	}
	return z.sugar.With(kv...)
}

func (z *ZapLogger) Base() *zap.Logger           { return z.base }
func (z *ZapLogger) Sugared() *zap.SugaredLogger { return z.sugar }
