package main

import (
	"context"
	"time"

	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/RaulAli/Vall-Activa-sub001/internal/repo/db"
	"go.uber.org/zap"
)

// Prunes refresh-token blacklist entries past their expiry and session
// rows no refresh could ever touch again. Meant to run on a schedule;
// the serving path never depends on it.
func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	conf := config.MustLoad()
	repo := db.New(conf)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now()

	blacklisted, err := repo.DeleteExpiredBlacklist(ctx, cutoff)
	if err != nil {
		zap.L().Fatal("failed to prune blacklist", zap.Error(err))
	}

	sessions, err := repo.DeleteRetiredSessions(ctx, cutoff)
	if err != nil {
		zap.L().Fatal("failed to prune sessions", zap.Error(err))
	}

	zap.L().Info(
		"cleanup finished",
		zap.Int64("blacklistRows", blacklisted),
		zap.Int64("sessionRows", sessions),
	)

	if err := repo.Close(ctx); err != nil {
		zap.L().Warn("Error closing repository", zap.Error(err))
	}
}
