package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-diary/internal/adapter"
	"github.com/MKhiriev/go-health-diary/internal/utils"
	"github.com/MKhiriev/go-health-diary/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	profile, err := a.adapter.Login(ctx, creds)
	if err != nil {
		// 401 on login means bad credentials, not an expired session
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.Profile{}, ErrWrongCredentials
		}
		return models.Profile{}, fmt.Errorf("login on server: %w", mapAdapterError(err))
	}

	return profile, nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := a.adapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile: %w", mapAdapterError(err))
	}

	return profile, nil
}

func (a *clientAuthService) SessionValid(now time.Time) bool {
	token := a.adapter.Token()
	if token == "" {
		return false
	}

	return !utils.IsTokenExpired(token, now)
}
