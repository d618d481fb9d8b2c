package config

import "time"

type ctxKey string

const (
	UidKey   ctxKey = "uid"
	EmailKey ctxKey = "email"
	SidKey   ctxKey = "sid"
)

const (
	RefreshCookieName = "refresh"
	RefreshCookiePath = "/auth"

	AccessTokenDuration  = time.Minute * 15
	RefreshTokenDuration = time.Hour * 24 * 30

	// SessionCacheTime bounds how long a session row may live in cache.
	// Revocations delete the key explicitly, the TTL only guards staleness.
	SessionCacheTime = time.Minute * 5
)
