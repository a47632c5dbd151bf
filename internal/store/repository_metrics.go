package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-health-diary/internal/logger"
	"github.com/MKhiriev/go-health-diary/models"
)

// storedTimeLayout is the canonical on-disk timestamp format. Timestamps
// are normalized to UTC before storage so that lexical ordering in SQLite
// matches chronological ordering.
const storedTimeLayout = time.RFC3339

// metricRepository is the SQLite-backed implementation of [MetricRepository].
// It persists records into the "buffered_metrics" table and sync watermarks
// into "sync_watermarks".
type metricRepository struct {
	*DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewMetricRepository constructs a [MetricRepository] backed by the provided
// database connection and logger.
func NewMetricRepository(db *DB, logger *logger.Logger) MetricRepository {
	logger.Debug().Msg("creating metric repository")
	return &metricRepository{
		DB:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  logger,
	}
}

func (m *metricRepository) SaveMetrics(ctx context.Context, metrics ...models.BufferedMetric) error {
	log := logger.FromContext(ctx)

	if len(metrics) == 0 {
		return nil
	}

	insert := m.builder.
		Insert("buffered_metrics").
		Columns("id", "kind", "recorded_at", "payload")
	for _, metric := range metrics {
		id := metric.ID
		if id == "" {
			id = uuid.NewString()
		}
		insert = insert.Values(id, string(metric.Kind), encodeStoredTime(metric.RecordedAt), []byte(metric.Payload))
	}

	query, args, err := insert.ToSql()
	if err != nil {
		log.Err(err).Str("func", "metricRepository.SaveMetrics").Msg("failed to build insert query")
		return fmt.Errorf("failed to build metrics insert: %w", err)
	}

	if _, err := m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metricRepository.SaveMetrics").
			Int("count", len(metrics)).
			Msg("failed to buffer metrics")
		return fmt.Errorf("failed to buffer metrics: %w", err)
	}

	return nil
}

func (m *metricRepository) GetEligibleMetrics(ctx context.Context, start, end time.Time) ([]models.BufferedMetric, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.builder.
		Select("id", "kind", "recorded_at", "payload").
		From("buffered_metrics").
		Where(sq.And{
			sq.GtOrEq{"recorded_at": encodeStoredTime(start)},
			sq.Lt{"recorded_at": encodeStoredTime(end)},
		}).
		OrderBy("recorded_at", "id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "metricRepository.GetEligibleMetrics").Msg("failed to build select query")
		return nil, fmt.Errorf("failed to build metrics select: %w", err)
	}

	rows, err := m.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "metricRepository.GetEligibleMetrics").Msg("failed to query buffered metrics")
		return nil, fmt.Errorf("failed to query buffered metrics: %w", err)
	}
	defer rows.Close()

	var metrics []models.BufferedMetric
	for rows.Next() {
		var (
			metric     models.BufferedMetric
			kind       string
			recordedAt string
		)
		if err := rows.Scan(&metric.ID, &kind, &recordedAt, (*[]byte)(&metric.Payload)); err != nil {
			log.Err(err).Str("func", "metricRepository.GetEligibleMetrics").Msg("error: scanning error")
			return nil, err
		}

		metric.Kind = models.MetricKind(kind)
		metric.RecordedAt, err = decodeStoredTime(recordedAt)
		if err != nil {
			log.Err(err).
				Str("func", "metricRepository.GetEligibleMetrics").
				Str("id", metric.ID).
				Msg("error: malformed recorded_at value")
			return nil, fmt.Errorf("malformed recorded_at for metric %s: %w", metric.ID, err)
		}

		metrics = append(metrics, metric)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "metricRepository.GetEligibleMetrics").Msg("error iterating buffered metrics")
		return nil, err
	}

	return metrics, nil
}

func (m *metricRepository) DeleteMetrics(ctx context.Context, ids []string) error {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return nil
	}

	query, args, err := m.builder.
		Delete("buffered_metrics").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "metricRepository.DeleteMetrics").Msg("failed to build delete query")
		return fmt.Errorf("failed to build metrics delete: %w", err)
	}

	if _, err := m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metricRepository.DeleteMetrics").
			Int("count", len(ids)).
			Msg("failed to delete acknowledged metrics")
		return fmt.Errorf("failed to delete acknowledged metrics: %w", err)
	}

	return nil
}

func (m *metricRepository) Watermark(ctx context.Context, deviceID string) (time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := m.builder.
		Select("synced_through").
		From("sync_watermarks").
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "metricRepository.Watermark").Msg("failed to build select query")
		return time.Time{}, fmt.Errorf("failed to build watermark select: %w", err)
	}

	var syncedThrough string
	err = m.DB.QueryRowContext(ctx, query, args...).Scan(&syncedThrough)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// device has never synced
		return time.Time{}, nil
	case err != nil:
		log.Err(err).
			Str("func", "metricRepository.Watermark").
			Str("device_id", deviceID).
			Msg("failed to query sync watermark")
		return time.Time{}, fmt.Errorf("failed to query sync watermark: %w", err)
	}

	watermark, err := decodeStoredTime(syncedThrough)
	if err != nil {
		log.Err(err).
			Str("func", "metricRepository.Watermark").
			Str("device_id", deviceID).
			Msg("error: malformed synced_through value")
		return time.Time{}, fmt.Errorf("malformed watermark for device %s: %w", deviceID, err)
	}

	return watermark, nil
}

func (m *metricRepository) SetWatermark(ctx context.Context, deviceID string, syncedThrough time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := m.builder.
		Insert("sync_watermarks").
		Columns("device_id", "synced_through").
		Values(deviceID, encodeStoredTime(syncedThrough)).
		Suffix("ON CONFLICT(device_id) DO UPDATE SET synced_through = excluded.synced_through").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "metricRepository.SetWatermark").Msg("failed to build upsert query")
		return fmt.Errorf("failed to build watermark upsert: %w", err)
	}

	if _, err := m.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "metricRepository.SetWatermark").
			Str("device_id", deviceID).
			Msg("failed to store sync watermark")
		return fmt.Errorf("failed to store sync watermark: %w", err)
	}

	return nil
}

func encodeStoredTime(t time.Time) string {
	return t.UTC().Format(storedTimeLayout)
}

func decodeStoredTime(s string) (time.Time, error) {
	return time.Parse(storedTimeLayout, s)
}
