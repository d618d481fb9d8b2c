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
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionCols = []string{
	"id",
	"user_id",
	"device_id",
	"family_id",
	"current_token_hash",
	"revoked",
	"session_version",
	"expires_at",
	"created_at",
	"updated_at",
}

func newTestRepo(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return &Repository{conn: sqlxDB}, mock, func() { _ = db.Close() }
}

func sessionRow(s *md.RefreshSession) *sqlmock.Rows {
	return sqlmock.NewRows(sessionCols).AddRow(
		s.ID,
		s.UserID,
		s.DeviceID,
		s.FamilyID,
		s.CurrentTokenHash,
		s.Revoked,
		s.SessionVersion,
		s.ExpiresAt,
		s.CreatedAt,
		s.UpdatedAt,
	)
}

func testSession() *md.RefreshSession {
	now := time.Now()
	return &md.RefreshSession{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		DeviceID:         "device-1",
		FamilyID:         uuid.New(),
		CurrentTokenHash: "a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2c3d4e5f6a1b2",
		Revoked:          false,
		SessionVersion:   1,
		ExpiresAt:        now.Add(time.Hour),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestRepository_CreateSession(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	s := testSession()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(sessionCreateQ)).
				WithArgs(
					s.ID,
					s.UserID,
					s.DeviceID,
					s.FamilyID,
					s.CurrentTokenHash,
					s.Revoked,
					s.SessionVersion,
					s.ExpiresAt,
				).
				WillReturnResult(sqlmock.NewResult(0, 1))

			assert.NoError(t, r.CreateSession(context.Background(), s))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"DatabaseError", func(t *testing.T) {
			mock.ExpectExec(regexp.QuoteMeta(sessionCreateQ)).
				WillReturnError(errors.New("database error"))

			assert.Error(t, r.CreateSession(context.Background(), s))
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_GetSessionByTokenHash(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	s := testSession()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(sessionGetByHashQ)).
				WithArgs(s.CurrentTokenHash).
				WillReturnRows(sessionRow(s))

			res, err := r.GetSessionByTokenHash(context.Background(), s.CurrentTokenHash)
			require.NoError(t, err)
			assert.Equal(t, s.ID, res.ID)
			assert.Equal(t, s.CurrentTokenHash, res.CurrentTokenHash)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(sessionGetByHashQ)).
				WithArgs(s.CurrentTokenHash).
				WillReturnError(sql.ErrNoRows)

			res, err := r.GetSessionByTokenHash(context.Background(), s.CurrentTokenHash)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_GetSessionByID(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	s := testSession()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(sessionGetByIDQ)).
				WithArgs(s.ID).
				WillReturnRows(sessionRow(s))

			res, err := r.GetSessionByID(context.Background(), s.ID)
			require.NoError(t, err)
			assert.Equal(t, s.ID, res.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(sessionGetByIDQ)).
				WithArgs(s.ID).
				WillReturnError(sql.ErrNoRows)

			res, err := r.GetSessionByID(context.Background(), s.ID)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_RotateSession(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	s := testSession()
	newHash := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	newExp := time.Now().Add(24 * time.Hour)

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(sessionLockActiveByHashQ)).
				WithArgs(s.CurrentTokenHash).
				WillReturnRows(sessionRow(s))
			mock.ExpectExec(regexp.QuoteMeta(blacklistInsertQ)).
				WithArgs(s.CurrentTokenHash, s.UserID, s.ID, s.ExpiresAt).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(sessionRotateQ)).
				WithArgs(newHash, newExp, s.ID).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			res, err := r.RotateSession(context.Background(), s.CurrentTokenHash, newHash, newExp)
			require.NoError(t, err)
			assert.Equal(t, s.ID, res.ID)
			assert.Equal(t, newHash, res.CurrentTokenHash)
			assert.Equal(t, newExp, res.ExpiresAt)
			assert.Equal(t, s.SessionVersion, res.SessionVersion)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NoActiveRow", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(sessionLockActiveByHashQ)).
				WithArgs(s.CurrentTokenHash).
				WillReturnError(sql.ErrNoRows)
			mock.ExpectRollback()

			res, err := r.RotateSession(context.Background(), s.CurrentTokenHash, newHash, newExp)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"BlacklistInsertFails", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(sessionLockActiveByHashQ)).
				WithArgs(s.CurrentTokenHash).
				WillReturnRows(sessionRow(s))
			mock.ExpectExec(regexp.QuoteMeta(blacklistInsertQ)).
				WillReturnError(errors.New("database error"))
			mock.ExpectRollback()

			res, err := r.RotateSession(context.Background(), s.CurrentTokenHash, newHash, newExp)
			assert.Nil(t, res)
			assert.Error(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"UpdateFails", func(t *testing.T) {
			mock.ExpectBegin()
			mock.ExpectQuery(regexp.QuoteMeta(sessionLockActiveByHashQ)).
				WithArgs(s.CurrentTokenHash).
				WillReturnRows(sessionRow(s))
			mock.ExpectExec(regexp.QuoteMeta(blacklistInsertQ)).
				WithArgs(s.CurrentTokenHash, s.UserID, s.ID, s.ExpiresAt).
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectExec(regexp.QuoteMeta(sessionRotateQ)).
				WillReturnError(errors.New("database error"))
			mock.ExpectRollback()

			res, err := r.RotateSession(context.Background(), s.CurrentTokenHash, newHash, newExp)
			assert.Nil(t, res)
			assert.Error(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_RevokeSession(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(sessionRevokeQ)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, r.RevokeSession(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RevokeFamily(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	familyID := uuid.New()
	id1, id2 := uuid.New(), uuid.New()

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(sessionRevokeFamilyQ)).
				WithArgs(familyID).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id1).AddRow(id2))

			ids, err := r.RevokeFamily(context.Background(), familyID)
			require.NoError(t, err)
			assert.Equal(t, []uuid.UUID{id1, id2}, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NothingToRevoke", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(sessionRevokeFamilyQ)).
				WithArgs(familyID).
				WillReturnRows(sqlmock.NewRows([]string{"id"}))

			ids, err := r.RevokeFamily(context.Background(), familyID)
			require.NoError(t, err)
			assert.Empty(t, ids)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_RevokeAllSessions(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	userID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(sessionRevokeAllQ)).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	ids, err := r.RevokeAllSessions(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_RevokeDeviceSessions(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	userID := uuid.New()
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(sessionRevokeDeviceQ)).
		WithArgs(userID, "device-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id))

	ids, err := r.RevokeDeviceSessions(context.Background(), userID, "device-1")
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{id}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListSessions(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	s := testSession()

	mock.ExpectQuery(regexp.QuoteMeta(sessionListActiveQ)).
		WithArgs(s.UserID).
		WillReturnRows(sessionRow(s))

	res, err := r.ListSessions(context.Background(), s.UserID)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, s.ID, res[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteRetiredSessions(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	cutoff := time.Now()

	mock.ExpectExec(regexp.QuoteMeta(sessionDeleteRetiredQ)).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := r.DeleteRetiredSessions(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
