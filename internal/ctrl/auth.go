package ctrl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/RaulAli/Vall-Activa-sub001/internal/auth"
	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/RaulAli/Vall-Activa-sub001/internal/dto"
	md "github.com/RaulAli/Vall-Activa-sub001/internal/models"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

const (
	sessionCacheKey   = "session:%v"
	blacklistCacheKey = "blacklist:%v"
)

// Login verifies credentials and opens a new session: fresh family,
// fresh device id unless the client supplied one, version 1. The raw
// refresh token is returned once and exists nowhere else.
func (c *Controller) Login(
	ctx context.Context,
	req *dto.EmailAndPasswordRequest,
) (*dto.IssuedTokens, error) {
	const op = "auth.Login.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	u, err := c.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Burn a compare so a missing user costs the same as a bad password.
			auth.CompareDummy([]byte(req.Password))
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if err = auth.ComparePasswords([]byte(u.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	if !u.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	deviceID := req.DeviceID
	if deviceID == "" {
		deviceID = uuid.NewString()
	}

	sess := &md.RefreshSession{
		ID:               uuid.New(),
		UserID:           u.ID,
		DeviceID:         deviceID,
		FamilyID:         uuid.New(),
		CurrentTokenHash: hash,
		Revoked:          false,
		SessionVersion:   1,
		ExpiresAt:        c.au.GetRefreshTime(),
	}

	if err = c.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	access, err := c.au.NewAccess(ctx, u.ID, u.Email, sess.ID, sess.SessionVersion)
	if err != nil {
		return nil, err
	}

	return &dto.IssuedTokens{
		Access:     access,
		Refresh:    raw,
		RefreshTTL: int64(config.RefreshTokenDuration.Seconds()),
		UserID:     u.ID,
		Email:      u.Email,
	}, nil
}

// Refresh rotates a refresh token. The checks run in a fixed order:
// blacklist with reuse detection, active lookup, revoked-state reuse
// detection, expiry, user status, and only then the atomic rotate.
//
// A consumed hash whose session still lives means the token was rotated
// away and replayed: theft. Likewise a session revoked while this hash
// was still current. Either way the whole family dies, not just the
// presented token.
func (c *Controller) Refresh(ctx context.Context, rawToken string) (*dto.IssuedTokens, error) {
	const op = "auth.Refresh.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hash := auth.HashToken(rawToken)

	var cached bool
	if err := c.cache.GetToStruct(ctx, fmt.Sprintf(blacklistCacheKey, hash), &cached); err == nil {
		return nil, auth.ErrTokenBlacklisted
	}

	entry, err := c.repo.GetBlacklistEntry(ctx, hash)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if entry != nil {
		consumer, err := c.repo.GetSessionByID(ctx, entry.SessionID)
		if err == nil && !consumer.Revoked {
			return nil, c.handleReuse(ctx, consumer)
		}
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return nil, err
		}

		// Chain already dead, replay is stale noise. Safe to fast-path.
		c.cache.Set(ctx, time.Until(entry.ExpiresAt), fmt.Sprintf(blacklistCacheKey, hash), true)
		return nil, auth.ErrTokenBlacklisted
	}

	sess, err := c.repo.GetSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, auth.ErrSessionNotFound
		}
		return nil, err
	}

	if sess.Revoked {
		return nil, c.handleReuse(ctx, sess)
	}

	if time.Now().After(sess.ExpiresAt) {
		if err = c.revokeOne(ctx, sess.ID); err != nil {
			return nil, err
		}
		return nil, auth.ErrRefreshTokenExpired
	}

	u, err := c.repo.GetUserByID(ctx, sess.UserID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}
	if err != nil || !u.IsActive {
		if err = c.revokeOne(ctx, sess.ID); err != nil {
			return nil, err
		}
		return nil, auth.ErrUserInactive
	}

	newRaw, newHash, err := auth.GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	rotated, err := c.repo.RotateSession(ctx, hash, newHash, c.au.GetRefreshTime())
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Lost a rotation race, the row is no longer keyed by this hash.
			return nil, auth.ErrSessionNotFound
		}
		return nil, err
	}

	// The rotated-away hash is deliberately not fast-pathed in cache:
	// its replay must reach the store so reuse detection can fire.
	c.cache.Set(ctx, config.SessionCacheTime, fmt.Sprintf(sessionCacheKey, rotated.ID), rotated)

	access, err := c.au.NewAccess(ctx, u.ID, u.Email, rotated.ID, rotated.SessionVersion)
	if err != nil {
		return nil, err
	}

	return &dto.IssuedTokens{
		Access:     access,
		Refresh:    newRaw,
		RefreshTTL: int64(config.RefreshTokenDuration.Seconds()),
		UserID:     u.ID,
		Email:      u.Email,
	}, nil
}

// handleReuse is the security response to a replayed token: every
// session in the family dies, the owner gets a heads-up, and the request
// still fails.
func (c *Controller) handleReuse(ctx context.Context, sess *md.RefreshSession) error {
	const op = "auth.handleReuse.ctrl"

	ids, err := c.repo.RevokeFamily(ctx, sess.FamilyID)
	if err != nil {
		return err
	}

	for _, id := range ids {
		c.cache.Delete(ctx, fmt.Sprintf(sessionCacheKey, id))
	}

	zap.L().Warn(
		"refresh token reuse detected",
		zap.String("op", op),
		zap.String("userID", sess.UserID.String()),
		zap.String("familyID", sess.FamilyID.String()),
		zap.Int("revoked", len(ids)),
	)

	if u, err := c.repo.GetUserByID(ctx, sess.UserID); err == nil {
		if err = c.email.SendReuseAlert(u.Email); err != nil {
			zap.L().Warn("failed to send reuse alert", zap.String("op", op), zap.Error(err))
		}
	}

	return auth.ErrTokenReuseDetected
}

func (c *Controller) revokeOne(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.RevokeSession(ctx, id); err != nil {
		return err
	}

	c.cache.Delete(ctx, fmt.Sprintf(sessionCacheKey, id))
	return nil
}

// Logout ends one device's session. A token that matches nothing is
// treated as already logged out, never as an error.
func (c *Controller) Logout(ctx context.Context, rawToken string) error {
	const op = "auth.Logout.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	hash := auth.HashToken(rawToken)

	sess, err := c.repo.GetSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil
		}
		return err
	}

	if sess.Revoked {
		return nil
	}

	err = c.repo.BlacklistToken(
		ctx, &md.BlacklistEntry{
			TokenHash: hash,
			UserID:    sess.UserID,
			SessionID: sess.ID,
			ExpiresAt: sess.ExpiresAt,
		},
	)
	if err != nil {
		return err
	}

	if err = c.revokeOne(ctx, sess.ID); err != nil {
		return err
	}

	c.cache.Set(ctx, time.Until(sess.ExpiresAt), fmt.Sprintf(blacklistCacheKey, hash), true)
	return nil
}

// RevokeAllDevices revokes every active session of the user and bumps
// each session's version in one statement. The bump is what invalidates
// access tokens that are already out there and not yet expired.
func (c *Controller) RevokeAllDevices(ctx context.Context, uid uuid.UUID) error {
	const op = "auth.RevokeAllDevices.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ids, err := c.repo.RevokeAllSessions(ctx, uid)
	if err != nil {
		return err
	}

	for _, id := range ids {
		c.cache.Delete(ctx, fmt.Sprintf(sessionCacheKey, id))
	}

	zap.L().Info(
		"revoked all devices",
		zap.String("op", op),
		zap.String("userID", uid.String()),
		zap.Int("sessions", len(ids)),
	)

	return nil
}

// CheckSession is the per-request half of access-token validation: the
// token's embedded session must still exist, be unrevoked, and carry
// exactly the version the token was issued with.
func (c *Controller) CheckSession(ctx context.Context, sid uuid.UUID, sv int64) error {
	const op = "auth.CheckSession.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	key := fmt.Sprintf(sessionCacheKey, sid)

	sess := &md.RefreshSession{}
	if err := c.cache.GetToStruct(ctx, key, sess); err != nil {
		sess, err = c.repo.GetSessionByID(ctx, sid)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return auth.ErrSessionNotFound
			}
			return err
		}

		if !sess.Revoked {
			c.cache.Set(ctx, config.SessionCacheTime, key, sess)
		}
	}

	if sess.Revoked || sess.SessionVersion != sv {
		return auth.ErrTokenRevoked
	}

	return nil
}

func (c *Controller) ListSessions(ctx context.Context, uid uuid.UUID) ([]*md.RefreshSession, error) {
	const op = "auth.ListSessions.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	return c.repo.ListSessions(ctx, uid)
}

// RevokeDevice is remote logout for one device. Idempotent: revoking a
// device with no active sessions succeeds.
func (c *Controller) RevokeDevice(ctx context.Context, uid uuid.UUID, deviceID string) error {
	const op = "auth.RevokeDevice.ctrl"

	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	ids, err := c.repo.RevokeDeviceSessions(ctx, uid, deviceID)
	if err != nil {
		return err
	}

	for _, id := range ids {
		c.cache.Delete(ctx, fmt.Sprintf(sessionCacheKey, id))
	}

	return nil
}
