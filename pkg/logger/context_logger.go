package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/motorlane/carstock/pkg/ctxutil"
)

// ContextLogBuilder accumulates fields for one log line, pre-seeded with
// whatever request metadata the context carries.
type ContextLogBuilder struct {
	ctx     context.Context
	level   zapcore.Level
	fields  []zap.Field
	message string
}

func newContextBuilder(ctx context.Context, level zapcore.Level, message string) *ContextLogBuilder {
	clb := &ContextLogBuilder{
		ctx:     ctx,
		level:   level,
		message: message,
		fields:  make([]zap.Field, 0, 8),
	}
	clb.extractContextFields()
	return clb
}

func (clb *ContextLogBuilder) extractContextFields() {
	if clb.ctx == nil {
		return
	}

	if requestID := ctxutil.GetRequestID(clb.ctx); requestID != "" {
		clb.fields = append(clb.fields, zap.String("request_id", requestID))
	}
	if clientIP := ctxutil.GetClientIP(clb.ctx); clientIP != "" {
		clb.fields = append(clb.fields, zap.String("client_ip", clientIP))
	}
	if module := ctxutil.GetModule(clb.ctx); module != "" {
		clb.fields = append(clb.fields, zap.String("module", module))
	}
	if function := ctxutil.GetFunction(clb.ctx); function != "" {
		clb.fields = append(clb.fields, zap.String("function", function))
	}
}

func (clb *ContextLogBuilder) String(key, value string) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.String(key, value))
	return clb
}

func (clb *ContextLogBuilder) Int(key string, value int) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Int(key, value))
	return clb
}

func (clb *ContextLogBuilder) Int64(key string, value int64) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Int64(key, value))
	return clb
}

func (clb *ContextLogBuilder) Bool(key string, value bool) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Bool(key, value))
	return clb
}

func (clb *ContextLogBuilder) Float64(key string, value float64) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Float64(key, value))
	return clb
}

func (clb *ContextLogBuilder) Duration(value time.Duration) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Duration("duration", value))
	return clb
}

func (clb *ContextLogBuilder) Err(err error) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Error(err))
	return clb
}

func (clb *ContextLogBuilder) Any(key string, value interface{}) *ContextLogBuilder {
	clb.fields = append(clb.fields, zap.Any(key, value))
	return clb
}

// Log emits the accumulated line at the builder's level.
func (clb *ContextLogBuilder) Log() {
	if Logger == nil {
		return
	}

	switch clb.level {
	case zapcore.DebugLevel:
		Logger.Debug(clb.message, clb.fields...)
	case zapcore.WarnLevel:
		Logger.Warn(clb.message, clb.fields...)
	case zapcore.ErrorLevel:
		Logger.Error(clb.message, clb.fields...)
	default:
		Logger.Info(clb.message, clb.fields...)
	}
}

func DebugWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.DebugLevel, message)
}

func InfoWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.InfoLevel, message)
}

func WarnWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.WarnLevel, message)
}

func ErrorWithContext(ctx context.Context, message string) *ContextLogBuilder {
	return newContextBuilder(ctx, zapcore.ErrorLevel, message)
}
