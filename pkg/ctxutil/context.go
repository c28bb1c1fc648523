package ctxutil

import (
	"context"
	"net/http"
	"time"

	"github.com/motorlane/carstock/internal/constants"
)

// Re-export ContextKey type
type ContextKey = constants.ContextKey

const (
	RequestIDKey = constants.CtxKeyRequestID
	ClientIPKey  = constants.CtxKeyClientIP
	UserAgentKey = constants.CtxKeyUserAgent
	StartTimeKey = constants.CtxKeyStartTime
	ModuleKey    = constants.CtxKeyModule
	FunctionKey  = constants.CtxKeyFunction
)

// NewContextWithRequest seeds a context with request metadata plus the
// module/function pair logging attaches to every line.
func NewContextWithRequest(ctx context.Context, req *http.Request, module, function string) context.Context {
	ctx = context.WithValue(ctx, StartTimeKey, time.Now())
	ctx = context.WithValue(ctx, ModuleKey, module)
	ctx = context.WithValue(ctx, FunctionKey, function)

	if req != nil {
		if requestID := req.Header.Get("X-Request-ID"); requestID != "" {
			ctx = context.WithValue(ctx, RequestIDKey, requestID)
		}
		ctx = context.WithValue(ctx, ClientIPKey, req.RemoteAddr)
		ctx = context.WithValue(ctx, UserAgentKey, req.UserAgent())
	}

	return ctx
}

// WithScope tags a context with the module/function pair only.
func WithScope(ctx context.Context, module, function string) context.Context {
	ctx = context.WithValue(ctx, ModuleKey, module)
	return context.WithValue(ctx, FunctionKey, function)
}

func GetRequestID(ctx context.Context) string {
	if val, ok := ctx.Value(RequestIDKey).(string); ok {
		return val
	}
	return ""
}

func GetClientIP(ctx context.Context) string {
	if val, ok := ctx.Value(ClientIPKey).(string); ok {
		return val
	}
	return ""
}

func GetUserAgent(ctx context.Context) string {
	if val, ok := ctx.Value(UserAgentKey).(string); ok {
		return val
	}
	return ""
}

func GetStartTime(ctx context.Context) time.Time {
	if val, ok := ctx.Value(StartTimeKey).(time.Time); ok {
		return val
	}
	return time.Time{}
}

func GetModule(ctx context.Context) string {
	if val, ok := ctx.Value(ModuleKey).(string); ok {
		return val
	}
	return ""
}

func GetFunction(ctx context.Context) string {
	if val, ok := ctx.Value(FunctionKey).(string); ok {
		return val
	}
	return ""
}

// GetDuration calculates duration from start time
func GetDuration(ctx context.Context) time.Duration {
	startTime := GetStartTime(ctx)
	if !startTime.IsZero() {
		return time.Since(startTime)
	}
	return 0
}
