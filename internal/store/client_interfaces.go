package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-diary/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// MetricRepository is the local buffer of captured health metrics. Records
// accumulate here between uploads and are deleted once the server has
// acknowledged them. The repository also tracks the per-device watermark,
// the end of the last successfully synced window.
type MetricRepository interface {
	// SaveMetrics persists the given records. Records without an ID are
	// assigned a fresh UUID before insertion.
	SaveMetrics(ctx context.Context, metrics ...models.BufferedMetric) error

	// GetEligibleMetrics returns buffered records whose RecordedAt falls in
	// the half-open window [start, end), ordered by RecordedAt then ID.
	GetEligibleMetrics(ctx context.Context, start, end time.Time) ([]models.BufferedMetric, error)

	// DeleteMetrics removes acknowledged records by ID. Unknown IDs are
	// ignored.
	DeleteMetrics(ctx context.Context, ids []string) error

	// Watermark returns the end of the last synced window for the device,
	// or the zero time when the device has never synced.
	Watermark(ctx context.Context, deviceID string) (time.Time, error)

	// SetWatermark records syncedThrough as the new watermark for the
	// device, replacing any previous value.
	SetWatermark(ctx context.Context, deviceID string, syncedThrough time.Time) error
}
