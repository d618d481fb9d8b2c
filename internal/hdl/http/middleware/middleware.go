package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/RaulAli/Vall-Activa-sub001/internal/auth"
	"github.com/RaulAli/Vall-Activa-sub001/internal/auth/jwt"
	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/RaulAli/Vall-Activa-sub001/internal/hdl"
	"github.com/RaulAli/Vall-Activa-sub001/internal/hdl/http/utils"
	metrics "github.com/RaulAli/Vall-Activa-sub001/internal/observability/metrics/prometheus"
	"github.com/google/uuid"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
)

type sessionChecker interface {
	CheckSession(ctx context.Context, sid uuid.UUID, sv int64) error
}

// Auth validates the bearer access token and cross-checks its embedded
// session against the store, so revocation takes effect before the
// token's own expiry. Tokens carrying no session claims predate this
// scheme and are rejected outright.
func Auth(au jwt.Port, ctrl sessionChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				header := r.Header.Get("Authorization")
				if header == "" || !strings.HasPrefix(header, "Bearer ") {
					utils.ErrResponse(w, http.StatusUnauthorized, hdl.ErrMissingAuthHeader)
					return
				}

				claims, err := au.ParseClaims(r.Context(), strings.TrimPrefix(header, "Bearer "))
				if err != nil {
					utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidToken)
					return
				}

				if claims.SessionID == uuid.Nil || claims.SessionVersion == 0 {
					utils.ErrResponse(w, http.StatusUnauthorized, auth.ErrInvalidToken)
					return
				}

				err = ctrl.CheckSession(r.Context(), claims.SessionID, claims.SessionVersion)
				if err != nil {
					if errors.Is(err, auth.ErrSessionNotFound) || errors.Is(err, auth.ErrTokenRevoked) {
						utils.ErrResponse(w, http.StatusUnauthorized, err)
						return
					}

					zap.L().Error("failed to check session", zap.Error(err))
					utils.ErrResponse(w, http.StatusInternalServerError, hdl.ErrInternal)
					return
				}

				ctx := context.WithValue(r.Context(), config.UidKey, claims.UID)
				ctx = context.WithValue(ctx, config.EmailKey, claims.Email)
				ctx = context.WithValue(ctx, config.SidKey, claims.SessionID)
				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

type LoggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *LoggingResponseWriter {
	return &LoggingResponseWriter{w, http.StatusOK}
}

func (lrw *LoggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func Prometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			s := time.Now()
			op := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

			lrw := NewLoggingResponseWriter(w)
			next.ServeHTTP(lrw, r)
			metrics.ObserveRequest(time.Since(s), lrw.statusCode, op)
		},
	)
}

func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				start := time.Now()
				lrw := NewLoggingResponseWriter(w)
				logger.Debug(
					"-->",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr),
				)

				next.ServeHTTP(lrw, r)

				logger.Info(
					"<--",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", lrw.statusCode),
					zap.Duration("duration", time.Since(start)),
					zap.String("remote", r.RemoteAddr),
				)
			},
		)
	}
}

func OT(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			span, ctx := opentracing.StartSpanFromContext(r.Context(), fmt.Sprintf("%s %s", r.Method, r.URL.Path))
			defer span.Finish()

			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
