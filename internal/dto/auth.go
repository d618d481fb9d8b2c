package dto

import "github.com/google/uuid"

type EmailAndPasswordRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	DeviceID string `json:"deviceId" validate:"omitempty,max=128"`
}

// IssuedTokens is the result of a successful login or refresh.
// Refresh holds the raw refresh token and is handed out exactly once;
// it never appears in any persisted form.
type IssuedTokens struct {
	Access     string    `json:"accessToken"`
	Refresh    string    `json:"-"`
	RefreshTTL int64     `json:"refreshTtl"`
	UserID     uuid.UUID `json:"userId"`
	Email      string    `json:"email"`
}
