package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	md "github.com/RaulAli/Vall-Activa-sub001/internal/models"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo"
)

// BlacklistToken records a consumed token hash. Inserting the same hash
// twice is a no-op, so logout and rotation stay idempotent.
func (r *Repository) BlacklistToken(ctx context.Context, e *md.BlacklistEntry) error {
	_, err := r.conn.ExecContext(
		ctx,
		blacklistInsertQ,
		e.TokenHash,
		e.UserID,
		e.SessionID,
		e.ExpiresAt,
	)
	return err
}

// GetBlacklistEntry returns the unexpired blacklist entry for a hash,
// or repo.ErrNotFound when the token was never consumed (or the entry
// already aged out).
func (r *Repository) GetBlacklistEntry(ctx context.Context, hash string) (*md.BlacklistEntry, error) {
	res := &md.BlacklistEntry{}
	err := r.conn.GetContext(ctx, res, blacklistGetQ, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) DeleteExpiredBlacklist(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.conn.ExecContext(ctx, blacklistDeleteExpiredQ, cutoff)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
