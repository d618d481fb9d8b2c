package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// ErrTokenBlacklisted is returned when a refresh token was already
	// consumed or revoked and is found in the blacklist.
	ErrTokenBlacklisted = errors.New("token blacklisted")

	// ErrTokenReuseDetected is returned when a rotated-away refresh token
	// is presented again. The whole family gets revoked as a side effect.
	ErrTokenReuseDetected = errors.New("token reuse detected")

	ErrSessionNotFound     = errors.New("session not found")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrUserInactive        = errors.New("user inactive")

	// ErrTokenRevoked is returned by access-token validation when the
	// backing session is revoked or its version no longer matches.
	ErrTokenRevoked = errors.New("token revoked")
)
