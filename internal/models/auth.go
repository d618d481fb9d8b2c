package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshSession is one logical login on one device. The raw refresh
// token is never stored, only the SHA-256 hash of the token currently
// accepted for this session. FamilyID is fixed at login and survives
// every rotation of the chain.
type RefreshSession struct {
	ID               uuid.UUID `db:"id"                 json:"id"`
	UserID           uuid.UUID `db:"user_id"            json:"userId"`
	DeviceID         string    `db:"device_id"          json:"deviceId"`
	FamilyID         uuid.UUID `db:"family_id"          json:"familyId"`
	CurrentTokenHash string    `db:"current_token_hash" json:"-"`
	Revoked          bool      `db:"revoked"            json:"revoked"`
	SessionVersion   int64     `db:"session_version"    json:"sessionVersion"`
	ExpiresAt        time.Time `db:"expires_at"         json:"expiresAt"`
	CreatedAt        time.Time `db:"created_at"         json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at"         json:"updatedAt"`
}

// BlacklistEntry marks a consumed or forcibly-expired refresh token.
// SessionID points at the session that consumed the token: if that
// session is still active when the token shows up again, the token was
// rotated away and is being replayed. ExpiresAt mirrors the token's own
// expiry so rows can be pruned once the token could no longer be
// accepted anyway.
type BlacklistEntry struct {
	TokenHash     string    `db:"token_hash"     json:"tokenHash"`
	UserID        uuid.UUID `db:"user_id"        json:"userId"`
	SessionID     uuid.UUID `db:"session_id"     json:"sessionId"`
	ExpiresAt     time.Time `db:"expires_at"     json:"expiresAt"`
	BlacklistedAt time.Time `db:"blacklisted_at" json:"blacklistedAt"`
}
