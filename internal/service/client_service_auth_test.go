package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-health-diary/internal/adapter"
	"github.com/MKhiriev/go-health-diary/internal/mock"
	"github.com/MKhiriev/go-health-diary/models"
)

func newTestAuthService(t *testing.T) (ClientAuthService, *mock.MockServerAdapter) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(mockAdapter), mockAdapter
}

func signedTestToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-9",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func TestAuthLogin_Success(t *testing.T) {
	svc, mockAdapter := newTestAuthService(t)
	ctx := context.Background()
	creds := models.Credentials{Email: "alice@example.com", Password: "pw"}

	mockAdapter.EXPECT().
		Login(ctx, creds).
		Return(models.Profile{ID: "user-9", Email: creds.Email}, nil)

	profile, err := svc.Login(ctx, creds)

	require.NoError(t, err)
	assert.Equal(t, "user-9", profile.ID)
}

func TestAuthLogin_Unauthorized_WrongCredentials(t *testing.T) {
	svc, mockAdapter := newTestAuthService(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.Profile{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, models.Credentials{Email: "alice@example.com", Password: "bad"})

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthLogin_TransportError_Wrapped(t *testing.T) {
	svc, mockAdapter := newTestAuthService(t)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Login(ctx, gomock.Any()).
		Return(models.Profile{}, errors.New("dial tcp: connection refused"))

	_, err := svc.Login(ctx, models.Credentials{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login on server")
}

func TestAuthSessionValid(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token func(t *testing.T) string
		want  bool
	}{
		{
			name:  "no token",
			token: func(*testing.T) string { return "" },
			want:  false,
		},
		{
			name:  "live token",
			token: func(t *testing.T) string { return signedTestToken(t, now.Add(time.Hour)) },
			want:  true,
		},
		{
			name:  "expired token",
			token: func(t *testing.T) string { return signedTestToken(t, now.Add(-time.Minute)) },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockAdapter := newTestAuthService(t)
			mockAdapter.EXPECT().Token().Return(tt.token(t))

			assert.Equal(t, tt.want, svc.SessionValid(now))
		})
	}
}
