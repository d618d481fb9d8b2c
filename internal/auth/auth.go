package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// refreshTokenBytes is the amount of random material behind every raw
// refresh token before encoding.
const refreshTokenBytes = 32

// dummyHash is compared against when login hits a missing user, so the
// missing-user and wrong-password paths stay indistinguishable.
var dummyHash = []byte("$2a$07$8zv6aZtNnXiiEEr8uNC8guJCBMPm0KV1JCZg3iPSn8lyEW0ZPbT4W")

func HashPassword(pswd string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pswd), 7)
	return string(bytes), err
}

func ComparePasswords(hashed, pswd []byte) error {
	if err := bcrypt.CompareHashAndPassword(hashed, pswd); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// CompareDummy burns a bcrypt comparison without a real user.
func CompareDummy(pswd []byte) {
	_ = bcrypt.CompareHashAndPassword(dummyHash, pswd)
}

// GenerateRefreshToken returns a new opaque refresh token and the hash
// under which it is stored. The raw form is URL-safe base64 without
// padding; only the hash ever reaches the database.
func GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, refreshTokenBytes)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken is the deterministic one-way hash used to look sessions and
// blacklist entries up by token. 64 hex chars.
func HashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
