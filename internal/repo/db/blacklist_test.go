package db

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	md "github.com/RaulAli/Vall-Activa-sub001/internal/models"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_BlacklistToken(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	e := &md.BlacklistEntry{
		TokenHash: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
		UserID:    uuid.New(),
		SessionID: uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(blacklistInsertQ)).
				WithArgs(e.TokenHash, e.UserID, e.SessionID, e.ExpiresAt).
				WillReturnResult(sqlmock.NewResult(0, 1))

			assert.NoError(t, r.BlacklistToken(context.Background(), e))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"DuplicateHashIsNoop", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(blacklistInsertQ)).
				WithArgs(e.TokenHash, e.UserID, e.SessionID, e.ExpiresAt).
				WillReturnResult(sqlmock.NewResult(0, 0))

			assert.NoError(t, r.BlacklistToken(context.Background(), e))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"DatabaseError", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(blacklistInsertQ)).
				WillReturnError(errors.New("database error"))

			assert.Error(t, r.BlacklistToken(context.Background(), e))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_GetBlacklistEntry(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	hash := "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2"
	userID := uuid.New()
	sessionID := uuid.New()

	cols := []string{"token_hash", "user_id", "session_id", "expires_at", "blacklisted_at"}

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(blacklistGetQ)).
				WithArgs(hash).
				WillReturnRows(
					sqlmock.NewRows(cols).
						AddRow(hash, userID, sessionID, time.Now().Add(time.Hour), time.Now()),
				)

			res, err := r.GetBlacklistEntry(context.Background(), hash)
			require.NoError(t, err)
			assert.Equal(t, hash, res.TokenHash)
			assert.Equal(t, sessionID, res.SessionID)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(blacklistGetQ)).
				WithArgs(hash).
				WillReturnError(sql.ErrNoRows)

			res, err := r.GetBlacklistEntry(context.Background(), hash)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_DeleteExpiredBlacklist(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	cutoff := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(blacklistDeleteExpiredQ)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 5))

	n, err := r.DeleteExpiredBlacklist(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
