package db

import (
	"context"
	"database/sql"
	"errors"

	md "github.com/RaulAli/Vall-Activa-sub001/internal/models"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo"
	"github.com/google/uuid"
)

func (r *Repository) GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error) {
	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByIDQ, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*md.User, error) {
	res := &md.User{}
	err := r.conn.GetContext(ctx, res, userGetByEmailQ, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, err
	}

	return res, nil
}
