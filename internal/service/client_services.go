package service

import (
	"github.com/MKhiriev/go-health-diary/internal/adapter"
	"github.com/MKhiriev/go-health-diary/internal/config"
	"github.com/MKhiriev/go-health-diary/internal/store"
)

type ClientServices struct {
	AuthService   ClientAuthService
	DietService   DietService
	HealthService HealthSyncService
	SyncJob       ClientSyncJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, app config.ClientApp) *ClientServices {
	authSvc := NewClientAuthService(serverAdapter)
	dietSvc := NewDietService(serverAdapter, app.DeviceID, app.Locale)
	healthSvc := NewHealthSyncService(localStore.MetricRepository, serverAdapter, app.DeviceID)

	return &ClientServices{
		AuthService:   authSvc,
		DietService:   dietSvc,
		HealthService: healthSvc,
		SyncJob:       NewClientSyncJob(healthSvc),
	}
}
