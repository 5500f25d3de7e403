package constant

const (
	ContextKeyRequestID = "requestId"

	RequestIDHeaderKey = "X-Courtside-Request-ID"
	CacheHeaderKey     = "X-Courtside-Cache"
)
