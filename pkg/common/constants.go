package common

const (
	RequestIDHeader = "X-Request-Id"

	HeaderRateLimitType       = "X-Auth-RateLimit-Type"
	HeaderRateLimitRemaining  = "X-Auth-RateLimit-Remaining"
	HeaderRateLimitReset      = "X-Auth-RateLimit-Reset"
	HeaderRateLimitRetryAfter = "X-Auth-RateLimit-Retry-After"
	HeaderLockoutUntil        = "X-Auth-Lockout-Until"
	HeaderViolationCount      = "X-Auth-Violation-Count"
	HeaderRetryAfter          = "Retry-After"

	HeaderForwardedFor = "X-Forwarded-For"
	HeaderRealIP       = "X-Real-IP"
)
