package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-diary/internal/adapter"
	"github.com/MKhiriev/go-health-diary/internal/store"
	"github.com/MKhiriev/go-health-diary/models"
)

// defaultSyncLookback bounds the first sync window of a device that has
// never synced before.
const defaultSyncLookback = 24 * time.Hour

type healthSyncService struct {
	localStore store.MetricRepository
	adapter    adapter.ServerAdapter
	deviceID   string
}

func NewHealthSyncService(localStore store.MetricRepository, serverAdapter adapter.ServerAdapter, deviceID string) HealthSyncService {
	return &healthSyncService{localStore: localStore, adapter: serverAdapter, deviceID: deviceID}
}

func (h *healthSyncService) RecordSteps(ctx context.Context, steps models.DailySteps) error {
	recordedAt, err := time.Parse(models.DateLayout, steps.Date)
	if err != nil {
		return fmt.Errorf("parse steps date: %w", err)
	}

	return h.buffer(ctx, models.MetricKindDailySteps, recordedAt, steps)
}

func (h *healthSyncService) RecordHeartRate(ctx context.Context, samples ...models.HeartRateSample) error {
	metrics := make([]models.BufferedMetric, 0, len(samples))
	for _, sample := range samples {
		recordedAt, err := time.Parse(models.TimestampLayout, sample.Timestamp)
		if err != nil {
			return fmt.Errorf("parse heart rate timestamp: %w", err)
		}

		payload, err := json.Marshal(sample)
		if err != nil {
			return fmt.Errorf("encode heart rate sample: %w", err)
		}

		metrics = append(metrics, models.BufferedMetric{
			Kind:       models.MetricKindHeartRateSample,
			RecordedAt: recordedAt,
			Payload:    payload,
		})
	}

	if err := h.localStore.SaveMetrics(ctx, metrics...); err != nil {
		return fmt.Errorf("buffer heart rate samples: %w", err)
	}

	return nil
}

func (h *healthSyncService) RecordRestingHeartRate(ctx context.Context, resting models.RestingHeartRate) error {
	recordedAt, err := time.Parse(models.DateLayout, resting.Date)
	if err != nil {
		return fmt.Errorf("parse resting heart rate date: %w", err)
	}

	return h.buffer(ctx, models.MetricKindRestingHeartRate, recordedAt, resting)
}

func (h *healthSyncService) RecordSpO2(ctx context.Context, readings ...models.SpO2Reading) error {
	metrics := make([]models.BufferedMetric, 0, len(readings))
	for _, reading := range readings {
		recordedAt, err := time.Parse(models.TimestampLayout, reading.Timestamp)
		if err != nil {
			return fmt.Errorf("parse SpO2 timestamp: %w", err)
		}

		payload, err := json.Marshal(reading)
		if err != nil {
			return fmt.Errorf("encode SpO2 reading: %w", err)
		}

		metrics = append(metrics, models.BufferedMetric{
			Kind:       models.MetricKindSpO2Reading,
			RecordedAt: recordedAt,
			Payload:    payload,
		})
	}

	if err := h.localStore.SaveMetrics(ctx, metrics...); err != nil {
		return fmt.Errorf("buffer SpO2 readings: %w", err)
	}

	return nil
}

func (h *healthSyncService) RecordSleep(ctx context.Context, session models.SleepSession) error {
	// interval records sit on the timeline at their start
	recordedAt, err := time.Parse(models.TimestampLayout, session.StartTime)
	if err != nil {
		return fmt.Errorf("parse sleep session start: %w", err)
	}

	return h.buffer(ctx, models.MetricKindSleepSession, recordedAt, session)
}

func (h *healthSyncService) RecordWorkout(ctx context.Context, workout models.WorkoutRecord) error {
	recordedAt, err := time.Parse(models.TimestampLayout, workout.StartTime)
	if err != nil {
		return fmt.Errorf("parse workout start: %w", err)
	}

	return h.buffer(ctx, models.MetricKindWorkout, recordedAt, workout)
}

func (h *healthSyncService) Sync(ctx context.Context, now time.Time) (models.HealthSyncResponse, error) {
	watermark, err := h.localStore.Watermark(ctx, h.deviceID)
	if err != nil {
		return models.HealthSyncResponse{}, fmt.Errorf("load sync watermark: %w", err)
	}

	start := watermark
	if start.IsZero() {
		start = now.Add(-defaultSyncLookback)
	}
	if start.After(now) {
		// clock went backwards, collapse the window instead of inverting it
		start = now
	}

	metrics, err := h.localStore.GetEligibleMetrics(ctx, start, now)
	if err != nil {
		return models.HealthSyncResponse{}, fmt.Errorf("load buffered metrics: %w", err)
	}

	if len(metrics) == 0 {
		// nothing to upload, mirror the backend's empty-batch acknowledgment
		return models.HealthSyncResponse{
			Status:         models.SyncStatusOK,
			ReceivedCounts: map[string]int{},
		}, nil
	}

	req, err := h.buildRequest(start, now, metrics)
	if err != nil {
		return models.HealthSyncResponse{}, err
	}

	resp, err := h.adapter.SyncHealthData(ctx, req)
	if err != nil {
		return models.HealthSyncResponse{}, fmt.Errorf("sync health data: %w", mapAdapterError(err))
	}

	if !resp.Accepted() {
		// keep the buffer, the whole batch will be retried next window
		return resp, fmt.Errorf("%w: %s", ErrServerRejected, resp.Message)
	}

	ids := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		ids = append(ids, metric.ID)
	}
	if err := h.localStore.DeleteMetrics(ctx, ids); err != nil {
		return resp, fmt.Errorf("prune acknowledged metrics: %w", err)
	}

	if err := h.localStore.SetWatermark(ctx, h.deviceID, now); err != nil {
		return resp, fmt.Errorf("advance sync watermark: %w", err)
	}

	return resp, nil
}

func (h *healthSyncService) buffer(ctx context.Context, kind models.MetricKind, recordedAt time.Time, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s record: %w", kind, err)
	}

	metric := models.BufferedMetric{
		Kind:       kind,
		RecordedAt: recordedAt,
		Payload:    payload,
	}
	if err := h.localStore.SaveMetrics(ctx, metric); err != nil {
		return fmt.Errorf("buffer %s record: %w", kind, err)
	}

	return nil
}

// buildRequest decodes buffered payloads back into their typed collections.
func (h *healthSyncService) buildRequest(start, end time.Time, metrics []models.BufferedMetric) (models.HealthSyncRequest, error) {
	req := models.NewHealthSyncRequest(h.deviceID, models.FormatTimestamp(start), models.FormatTimestamp(end))

	for _, metric := range metrics {
		switch metric.Kind {
		case models.MetricKindDailySteps:
			var record models.DailySteps
			if err := json.Unmarshal(metric.Payload, &record); err != nil {
				return models.HealthSyncRequest{}, decodeMetricError(metric, err)
			}
			req.DailySteps = append(req.DailySteps, record)

		case models.MetricKindHeartRateSample:
			var record models.HeartRateSample
			if err := json.Unmarshal(metric.Payload, &record); err != nil {
				return models.HealthSyncRequest{}, decodeMetricError(metric, err)
			}
			req.HeartRateSamples = append(req.HeartRateSamples, record)

		case models.MetricKindRestingHeartRate:
			var record models.RestingHeartRate
			if err := json.Unmarshal(metric.Payload, &record); err != nil {
				return models.HealthSyncRequest{}, decodeMetricError(metric, err)
			}
			req.RestingHeartRates = append(req.RestingHeartRates, record)

		case models.MetricKindSpO2Reading:
			var record models.SpO2Reading
			if err := json.Unmarshal(metric.Payload, &record); err != nil {
				return models.HealthSyncRequest{}, decodeMetricError(metric, err)
			}
			req.SpO2Readings = append(req.SpO2Readings, record)

		case models.MetricKindSleepSession:
			var record models.SleepSession
			if err := json.Unmarshal(metric.Payload, &record); err != nil {
				return models.HealthSyncRequest{}, decodeMetricError(metric, err)
			}
			req.SleepSessions = append(req.SleepSessions, record)

		case models.MetricKindWorkout:
			var record models.WorkoutRecord
			if err := json.Unmarshal(metric.Payload, &record); err != nil {
				return models.HealthSyncRequest{}, decodeMetricError(metric, err)
			}
			req.Workouts = append(req.Workouts, record)

		default:
			return models.HealthSyncRequest{}, fmt.Errorf("unknown buffered metric kind %q (id=%s)", metric.Kind, metric.ID)
		}
	}

	return req, nil
}

func decodeMetricError(metric models.BufferedMetric, err error) error {
	return fmt.Errorf("decode buffered %s record %s: %w", metric.Kind, metric.ID, err)
}
