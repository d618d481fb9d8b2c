package db

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetUserByID(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	userID := uuid.New()
	cols := []string{"id", "name", "email", "is_active", "created_at", "updated_at"}

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
				WithArgs(userID).
				WillReturnRows(
					sqlmock.NewRows(cols).
						AddRow(userID, "Test User", "test@example.com", true, time.Now(), time.Now()),
				)

			res, err := r.GetUserByID(context.Background(), userID)
			require.NoError(t, err)
			assert.Equal(t, userID, res.ID)
			assert.True(t, res.IsActive)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(userGetByIDQ)).
				WithArgs(userID).
				WillReturnError(sql.ErrNoRows)

			res, err := r.GetUserByID(context.Background(), userID)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}

func TestRepository_GetUserByEmail(t *testing.T) {
	r, mock, cleanup := newTestRepo(t)
	defer cleanup()

	userID := uuid.New()
	email := "test@example.com"
	cols := []string{"id", "name", "email", "password", "is_active", "created_at", "updated_at"}

	t.Run(
		"Success", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
				WithArgs(email).
				WillReturnRows(
					sqlmock.NewRows(cols).
						AddRow(userID, "Test User", email, "$2a$07$hash", true, time.Now(), time.Now()),
				)

			res, err := r.GetUserByEmail(context.Background(), email)
			require.NoError(t, err)
			assert.Equal(t, userID, res.ID)
			assert.Equal(t, email, res.Email)
			assert.NotEmpty(t, res.Password)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)

	t.Run(
		"NotFound", func(t *testing.T) {
			mock.ExpectQuery(regexp.QuoteMeta(userGetByEmailQ)).
				WithArgs(email).
				WillReturnError(sql.ErrNoRows)

			res, err := r.GetUserByEmail(context.Background(), email)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, repo.ErrNotFound)
			assert.NoError(t, mock.ExpectationsWereMet())
		},
	)
}
