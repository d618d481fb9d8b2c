package ctrl

import (
	"context"
	"io"
	"time"

	"github.com/RaulAli/Vall-Activa-sub001/internal/auth/jwt"
	"github.com/RaulAli/Vall-Activa-sub001/internal/dto"
	md "github.com/RaulAli/Vall-Activa-sub001/internal/models"
	"github.com/google/uuid"
)

type AppRepo interface {
	GetUserByID(ctx context.Context, userID uuid.UUID) (*md.User, error)
	GetUserByEmail(ctx context.Context, email string) (*md.User, error)

	CreateSession(ctx context.Context, s *md.RefreshSession) error
	GetSessionByTokenHash(ctx context.Context, hash string) (*md.RefreshSession, error)
	GetSessionByID(ctx context.Context, id uuid.UUID) (*md.RefreshSession, error)
	RotateSession(ctx context.Context, oldHash, newHash string, expiresAt time.Time) (*md.RefreshSession, error)
	RevokeSession(ctx context.Context, id uuid.UUID) error
	RevokeFamily(ctx context.Context, familyID uuid.UUID) ([]uuid.UUID, error)
	RevokeAllSessions(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	RevokeDeviceSessions(ctx context.Context, userID uuid.UUID, deviceID string) ([]uuid.UUID, error)
	ListSessions(ctx context.Context, userID uuid.UUID) ([]*md.RefreshSession, error)

	BlacklistToken(ctx context.Context, e *md.BlacklistEntry) error
	GetBlacklistEntry(ctx context.Context, hash string) (*md.BlacklistEntry, error)
}

type AppCtrl interface {
	Login(ctx context.Context, req *dto.EmailAndPasswordRequest) (*dto.IssuedTokens, error)
	Refresh(ctx context.Context, rawToken string) (*dto.IssuedTokens, error)
	Logout(ctx context.Context, rawToken string) error
	RevokeAllDevices(ctx context.Context, uid uuid.UUID) error
	CheckSession(ctx context.Context, sid uuid.UUID, sv int64) error
	ListSessions(ctx context.Context, uid uuid.UUID) ([]*md.RefreshSession, error)
	RevokeDevice(ctx context.Context, uid uuid.UUID, deviceID string) error
}

type CacheService interface {
	io.Closer
	GetToStruct(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, t time.Duration, key string, val any)
	Delete(ctx context.Context, key string)
}

type EmailService interface {
	SendReuseAlert(toEmail string) error
}

type Controller struct {
	au    jwt.Port
	repo  AppRepo
	cache CacheService
	email EmailService
}

func New(au jwt.Port, repo AppRepo, cache CacheService, email EmailService) *Controller {
	return &Controller{
		au:    au,
		repo:  repo,
		cache: cache,
		email: email,
	}
}
