package constants

// ContextKey is the type for values this service stores in a context.
type ContextKey string

const (
	CtxKeyRequestID ContextKey = "request_id"
	CtxKeyClientIP  ContextKey = "client_ip"
	CtxKeyUserAgent ContextKey = "user_agent"
	CtxKeyStartTime ContextKey = "start_time"
	CtxKeyModule    ContextKey = "module"
	CtxKeyFunction  ContextKey = "function"
)
