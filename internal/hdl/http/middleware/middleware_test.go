package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/RaulAli/Vall-Activa-sub001/internal/auth"
	"github.com/RaulAli/Vall-Activa-sub001/internal/auth/jwt"
	"github.com/RaulAli/Vall-Activa-sub001/internal/config"
	"github.com/RaulAli/Vall-Activa-sub001/tests/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	mock := gomock.NewController(t)
	defer mock.Finish()

	mauth := mocks.NewMockPort(mock)
	mctrl := mocks.NewMockAppCtrl(mock)

	testUserID := uuid.New()
	sessionID := uuid.New()

	validClaims := jwt.Claims{
		UID:            testUserID,
		Email:          "test@example.com",
		SessionID:      sessionID,
		SessionVersion: 1,
	}

	var gotUID uuid.UUID
	var gotSID uuid.UUID
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			uid, ok := r.Context().Value(config.UidKey).(uuid.UUID)
			require.True(t, ok)
			gotUID = uid

			sid, ok := r.Context().Value(config.SidKey).(uuid.UUID)
			require.True(t, ok)
			gotSID = sid

			w.WriteHeader(http.StatusOK)
		},
	)

	handler := Auth(mauth, mctrl)(next)

	tests := []struct {
		name   string
		header string
		status int
		expect func()
	}{
		{
			name:   "Success",
			header: "Bearer valid-token",
			status: http.StatusOK,
			expect: func() {
				mauth.EXPECT().
					ParseClaims(gomock.Any(), "valid-token").
					Return(validClaims, nil)
				mctrl.EXPECT().
					CheckSession(gomock.Any(), sessionID, int64(1)).
					Return(nil)
			},
		},
		{
			name:   "MissingHeader",
			header: "",
			status: http.StatusUnauthorized,
			expect: func() {},
		},
		{
			name:   "NotBearer",
			header: "Basic dXNlcjpwYXNz",
			status: http.StatusUnauthorized,
			expect: func() {},
		},
		{
			name:   "UnparsableToken",
			header: "Bearer bad-token",
			status: http.StatusUnauthorized,
			expect: func() {
				mauth.EXPECT().
					ParseClaims(gomock.Any(), "bad-token").
					Return(jwt.Claims{}, errors.New("parse error"))
			},
		},
		{
			name:   "NoSessionClaims",
			header: "Bearer legacy-token",
			status: http.StatusUnauthorized,
			expect: func() {
				mauth.EXPECT().
					ParseClaims(gomock.Any(), "legacy-token").
					Return(
						jwt.Claims{
							UID:   testUserID,
							Email: "test@example.com",
						}, nil,
					)
			},
		},
		{
			name:   "RevokedSession",
			header: "Bearer revoked-token",
			status: http.StatusUnauthorized,
			expect: func() {
				mauth.EXPECT().
					ParseClaims(gomock.Any(), "revoked-token").
					Return(validClaims, nil)
				mctrl.EXPECT().
					CheckSession(gomock.Any(), sessionID, int64(1)).
					Return(auth.ErrTokenRevoked)
			},
		},
		{
			name:   "CheckSessionFails",
			header: "Bearer some-token",
			status: http.StatusInternalServerError,
			expect: func() {
				mauth.EXPECT().
					ParseClaims(gomock.Any(), "some-token").
					Return(validClaims, nil)
				mctrl.EXPECT().
					CheckSession(gomock.Any(), sessionID, int64(1)).
					Return(errors.New("db error"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				tt.expect()

				req := httptest.NewRequest(http.MethodGet, "/protected", nil)
				if tt.header != "" {
					req.Header.Set("Authorization", tt.header)
				}

				w := httptest.NewRecorder()
				handler.ServeHTTP(w, req)

				assert.Equal(t, tt.status, w.Result().StatusCode)
				if tt.status == http.StatusOK {
					assert.Equal(t, testUserID, gotUID)
					assert.Equal(t, sessionID, gotSID)
				}
			},
		)
	}
}
