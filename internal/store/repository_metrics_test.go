package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-health-diary/internal/logger"
	"github.com/MKhiriev/go-health-diary/models"
)

func newTestMetricRepo(t *testing.T) (*metricRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &metricRepository{
		DB:      &DB{DB: db, logger: l},
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		logger:  l,
	}
	return repo, mock, db
}

func TestSaveMetrics_Success(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	recordedAt := time.Date(2026, 3, 14, 8, 30, 0, 0, time.UTC)
	metrics := []models.BufferedMetric{
		{
			ID:         "m-1",
			Kind:       models.MetricKindDailySteps,
			RecordedAt: recordedAt,
			Payload:    json.RawMessage(`{"date":"2026-03-14","count":8000}`),
		},
		{
			ID:         "m-2",
			Kind:       models.MetricKindHeartRateSample,
			RecordedAt: recordedAt.Add(time.Minute),
			Payload:    json.RawMessage(`{"timestamp":"2026-03-14T08:31:00Z","bpm":72}`),
		},
	}

	mock.ExpectExec("INSERT INTO buffered_metrics").
		WithArgs(
			"m-1", "daily_steps", "2026-03-14T08:30:00Z", []byte(metrics[0].Payload),
			"m-2", "heart_rate_samples", "2026-03-14T08:31:00Z", []byte(metrics[1].Payload),
		).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.SaveMetrics(context.Background(), metrics...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveMetrics_AssignsMissingID(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	metric := models.BufferedMetric{
		Kind:       models.MetricKindWorkout,
		RecordedAt: time.Date(2026, 3, 14, 7, 0, 0, 0, time.UTC),
		Payload:    json.RawMessage(`{}`),
	}

	mock.ExpectExec("INSERT INTO buffered_metrics").
		WithArgs(sqlmock.AnyArg(), "workouts", "2026-03-14T07:00:00Z", []byte(metric.Payload)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveMetrics(context.Background(), metric); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveMetrics_NoRecords(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	// empty input must not touch the database
	if err := repo.SaveMetrics(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveMetrics_ExecError(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO buffered_metrics").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SaveMetrics(context.Background(), models.BufferedMetric{
		ID:      "m-1",
		Kind:    models.MetricKindSpO2Reading,
		Payload: json.RawMessage(`{}`),
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetEligibleMetrics_Window(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	start := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.
		NewRows([]string{"id", "kind", "recorded_at", "payload"}).
		AddRow("m-1", "daily_steps", "2026-03-13T00:00:00Z", []byte(`{"date":"2026-03-13","count":5000}`)).
		AddRow("m-2", "sleep_sessions", "2026-03-13T22:15:00Z", []byte(`{"stage":"deep"}`))

	mock.ExpectQuery("SELECT id, kind, recorded_at, payload FROM buffered_metrics").
		WithArgs("2026-03-13T00:00:00Z", "2026-03-14T00:00:00Z").
		WillReturnRows(rows)

	metrics, err := repo.GetEligibleMetrics(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(metrics) != 2 {
		t.Fatalf("expected 2 metrics, got %d", len(metrics))
	}
	if metrics[0].Kind != models.MetricKindDailySteps {
		t.Errorf("expected kind daily_steps, got %s", metrics[0].Kind)
	}
	if !metrics[1].RecordedAt.Equal(time.Date(2026, 3, 13, 22, 15, 0, 0, time.UTC)) {
		t.Errorf("unexpected recorded_at: %v", metrics[1].RecordedAt)
	}
}

func TestGetEligibleMetrics_MalformedTimestamp(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"id", "kind", "recorded_at", "payload"}).
		AddRow("m-1", "daily_steps", "not-a-timestamp", []byte(`{}`))

	mock.ExpectQuery("SELECT id, kind, recorded_at, payload FROM buffered_metrics").
		WillReturnRows(rows)

	_, err := repo.GetEligibleMetrics(context.Background(), time.Time{}, time.Now())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestDeleteMetrics_Success(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM buffered_metrics").
		WithArgs("m-1", "m-2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.DeleteMetrics(context.Background(), []string{"m-1", "m-2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteMetrics_NoIDs(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	if err := repo.DeleteMetrics(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestWatermark_NeverSynced(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT synced_through FROM sync_watermarks").
		WithArgs("device-1").
		WillReturnError(sql.ErrNoRows)

	watermark, err := repo.Watermark(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !watermark.IsZero() {
		t.Errorf("expected zero watermark, got %v", watermark)
	}
}

func TestWatermark_Success(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"synced_through"}).
		AddRow("2026-03-13T23:00:00Z")

	mock.ExpectQuery("SELECT synced_through FROM sync_watermarks").
		WithArgs("device-1").
		WillReturnRows(rows)

	watermark, err := repo.Watermark(context.Background(), "device-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !watermark.Equal(time.Date(2026, 3, 13, 23, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected watermark: %v", watermark)
	}
}

func TestSetWatermark_Upsert(t *testing.T) {
	repo, mock, db := newTestMetricRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sync_watermarks").
		WithArgs("device-1", "2026-03-14T00:00:00Z").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetWatermark(context.Background(), "device-1", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
