package client

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-health-diary/internal/config"
	"github.com/MKhiriev/go-health-diary/internal/logger"
	"github.com/MKhiriev/go-health-diary/internal/service"
	"github.com/MKhiriev/go-health-diary/models"
)

type App struct {
	services *service.ClientServices
	auth     config.ClientAuth
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, auth config.ClientAuth, workers config.ClientWorkers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, fmt.Errorf("no services provided")
	}

	return &App{services: services, auth: auth, workers: workers, logger: log}, nil
}

// Run signs in when credentials are configured, warms the diet dashboard,
// uploads any backlog of buffered metrics, then keeps the background sync
// job running until the process receives SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx := context.Background()

	if a.auth.Email != "" {
		profile, err := a.services.AuthService.Login(ctx, models.Credentials{
			Email:    a.auth.Email,
			Password: a.auth.Password,
		})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}
		a.logger.Info().Str("user_id", profile.ID).Msg("signed in")
	}

	a.services.DietService.Refresh(ctx)
	if err := a.services.DietService.State().Err; err != nil {
		// degraded dashboard is not fatal, the next refresh may recover
		a.logger.Warn().Err(err).Msg("initial dashboard refresh failed")
	}

	if _, err := a.services.HealthService.Sync(ctx, time.Now()); err != nil {
		a.logger.Warn().Err(err).Msg("initial health sync failed")
	}

	a.services.SyncJob.Start(ctx, a.workers.SyncInterval)
	defer a.services.SyncJob.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info().Msg("shutting down")
	return nil
}
