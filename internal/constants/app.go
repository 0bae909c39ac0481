package constants

import "time"

// Session cookie settings. The same 7-day lifetime is embedded in the token
// itself; the cookie only mirrors it for browser clients.
const (
	TokenCookieName   = "token"
	TokenCookiePath   = "/"
	TokenCookieMaxAge = int(7 * 24 * time.Hour / time.Second)
)

// Gin context keys set by the auth middleware
const (
	CtxKeyUserID = "user_id"
	CtxKeyNIP    = "nip"
	CtxKeyName   = "name"
)
