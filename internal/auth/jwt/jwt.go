package jwt

import (
	"context"
	"time"

	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type Port interface {
	GetRefreshTime() time.Time
	NewAccess(ctx context.Context, uid uuid.UUID, email string, sid uuid.UUID, sv int64) (string, error)
	ParseClaims(ctx context.Context, tokenStr string) (Claims, error)
}

type Core struct {
	secret []byte
	issuer string
}

// Claims is the access-token payload. SessionID and SessionVersion tie
// the token to one RefreshSession row so it can be rejected the moment
// that session is revoked or version-bumped, long before Exp.
type Claims struct {
	UID            uuid.UUID `json:"uid"`
	Email          string    `json:"email"`
	SessionID      uuid.UUID `json:"sid"`
	SessionVersion int64     `json:"sv"`
	jwt.RegisteredClaims
}

func New(conf config.Config) *Core {
	return &Core{secret: []byte(conf.Auth.JWT.Secret), issuer: conf.Auth.JWT.Issuer}
}

func (c *Core) GetRefreshTime() time.Time {
	return time.Now().Add(config.RefreshTokenDuration)
}

func (c *Core) NewAccess(
	ctx context.Context,
	uid uuid.UUID,
	email string,
	sid uuid.UUID,
	sv int64,
) (string, error) {
	const op = "auth.NewAccess.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	signed, err := jwt.NewWithClaims(
		jwt.SigningMethodHS256, &Claims{
			UID:            uid,
			Email:          email,
			SessionID:      sid,
			SessionVersion: sv,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.AccessTokenDuration)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
				Issuer:    c.issuer,
			},
		},
	).SignedString(c.secret)
	if err != nil {
		zap.L().Error(
			ErrWhileCreatingToken.Error(),
			zap.String("op", op),
			zap.Error(err),
		)

		return "", ErrWhileCreatingToken
	}

	return signed, nil
}

func (c *Core) ParseClaims(ctx context.Context, tokenStr string) (Claims, error) {
	const op = "auth.ParseClaims.jwt"
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	claims := Claims{}
	token, err := jwt.ParseWithClaims(
		tokenStr, &claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, ErrUnexpectedSignMethod
			}

			return c.secret, nil
		},
	)
	if err != nil {
		zap.L().Debug(
			"Failed to parse claims",
			zap.String("op", op),
			zap.Error(err),
		)

		return claims, ErrInvalidToken
	}

	if !token.Valid {
		return claims, ErrInvalidToken
	}

	return claims, nil
}
