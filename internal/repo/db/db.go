package db

import (
	"context"
	"fmt"

	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type Repository struct {
	conn *sqlx.DB
}

func New(conf config.Config) *Repository {
	conn, err := sqlx.Open(
		"pgx", fmt.Sprintf(
			"postgres://%s:%s@%s:%d/%s?sslmode=disable",
			conf.DB.User,
			conf.DB.Password,
			conf.DB.Host,
			conf.DB.Port,
			conf.DB.Database,
		),
	)
	if err != nil {
		zap.L().Fatal("failed to connect to the database", zap.Error(err))
	}

	if err = conn.Ping(); err != nil {
		zap.L().Fatal("failed to ping the database", zap.Error(err))
	}

	if err = applyMigrations(conn.DB, conf); err != nil {
		zap.L().Fatal("failed to apply migrations", zap.Error(err))
	}

	return &Repository{conn: conn}
}

func (r *Repository) Close(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- r.conn.Close()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
