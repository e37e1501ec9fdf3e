package util

// gin.Context 键
const (
	ContextClaimsKey = "claims"
	ContextRequestID = "request_id"
)

const (
	ProfileCacheKeyPrefix = "learner:profile:"
	HeaderRequestID       = "X-Request-ID"
)
