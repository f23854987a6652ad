package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alert messages
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: repeated failed authentication"
	SecurityAlertHighRate   = "SECURITY ALERT: blocking high request rate"
)

// Rate limiting and alerting
const (
	FailedAuthAlertThreshold = 5
	RequestRateLimit         = 1000
	RateAlertEvery           = 100
	RateWindow               = 5 * time.Minute
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Credential locations besides X-API-Key
const (
	BearerPrefix = "Bearer "
	QueryAPIKey  = "api_key"
)

// PublicPaths are path prefixes that bypass authentication
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces credentials in logged headers
const RedactedValue = "[REDACTED]"
