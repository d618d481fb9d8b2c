package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	md "github.com/RaulAli/Vall-Activa-sub001/internal/models"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (r *Repository) CreateSession(ctx context.Context, s *md.RefreshSession) error {
	_, err := r.conn.ExecContext(
		ctx,
		sessionCreateQ,
		s.ID,
		s.UserID,
		s.DeviceID,
		s.FamilyID,
		s.CurrentTokenHash,
		s.Revoked,
		s.SessionVersion,
		s.ExpiresAt,
	)
	return err
}

// GetSessionByTokenHash returns the session currently or previously keyed
// by this hash, regardless of its revocation state. Callers decide whether
// a revoked hit means reuse.
func (r *Repository) GetSessionByTokenHash(ctx context.Context, hash string) (*md.RefreshSession, error) {
	res := &md.RefreshSession{}
	err := r.conn.GetContext(ctx, res, sessionGetByHashQ, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetSessionByID(ctx context.Context, id uuid.UUID) (*md.RefreshSession, error) {
	res := &md.RefreshSession{}
	err := r.conn.GetContext(ctx, res, sessionGetByIDQ, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

// RotateSession swaps the session's token hash and expiry in one
// transaction, blacklisting the old hash before the swap. The active row
// is locked by hash, so of two racing refreshes only one rotates; the
// loser sees no active row anymore and gets repo.ErrNotFound.
func (r *Repository) RotateSession(
	ctx context.Context,
	oldHash, newHash string,
	expiresAt time.Time,
) (*md.RefreshSession, error) {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			zap.L().Debug("failed to rollback rotation", zap.Error(err))
		}
	}()

	res := &md.RefreshSession{}
	err = tx.GetContext(ctx, res, sessionLockActiveByHashQ, oldHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	// Old token is dead from here on, even if the update below fails.
	_, err = tx.ExecContext(ctx, blacklistInsertQ, oldHash, res.UserID, res.ID, res.ExpiresAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx, sessionRotateQ, newHash, expiresAt, res.ID)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	res.CurrentTokenHash = newHash
	res.ExpiresAt = expiresAt
	return res, nil
}

func (r *Repository) RevokeSession(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn.ExecContext(ctx, sessionRevokeQ, id)
	return err
}

// RevokeFamily revokes every session in one rotation chain. Returns the
// ids of the sessions it revoked so cached copies can be dropped.
func (r *Repository) RevokeFamily(ctx context.Context, familyID uuid.UUID) ([]uuid.UUID, error) {
	return r.revokeReturningIDs(ctx, sessionRevokeFamilyQ, familyID)
}

// RevokeAllSessions is the global kill switch for one user: every active
// session is revoked and its version bumped in a single statement, which
// also invalidates every outstanding access token for those sessions.
func (r *Repository) RevokeAllSessions(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.revokeReturningIDs(ctx, sessionRevokeAllQ, userID)
}

func (r *Repository) RevokeDeviceSessions(
	ctx context.Context,
	userID uuid.UUID,
	deviceID string,
) ([]uuid.UUID, error) {
	return r.revokeReturningIDs(ctx, sessionRevokeDeviceQ, userID, deviceID)
}

func (r *Repository) revokeReturningIDs(
	ctx context.Context,
	q string,
	args ...any,
) ([]uuid.UUID, error) {
	rows, err := r.conn.QueryxContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *Repository) ListSessions(ctx context.Context, userID uuid.UUID) ([]*md.RefreshSession, error) {
	res := make([]*md.RefreshSession, 0)
	if err := r.conn.SelectContext(ctx, &res, sessionListActiveQ, userID); err != nil {
		return nil, err
	}

	return res, nil
}

// DeleteRetiredSessions prunes rows no refresh could ever touch again:
// revoked before the cutoff or expired before it.
func (r *Repository) DeleteRetiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.conn.ExecContext(ctx, sessionDeleteRetiredQ, cutoff)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
