package models

import (
	"encoding/json"
	"time"
)

// MetricKind discriminates buffered metric records in the local store.
// The values double as the wire collection names used in received_counts.
type MetricKind string

const (
	MetricKindDailySteps       MetricKind = "daily_steps"
	MetricKindHeartRateSample  MetricKind = "heart_rate_samples"
	MetricKindRestingHeartRate MetricKind = "resting_heart_rates"
	MetricKindSpO2Reading      MetricKind = "spo2_readings"
	MetricKindSleepSession     MetricKind = "sleep_sessions"
	MetricKindWorkout          MetricKind = "workouts"
)

// BufferedMetric is one locally captured metric record waiting to be synced.
// Payload holds the JSON encoding of the typed record for Kind; the buffer
// never interprets it beyond storage.
type BufferedMetric struct {
	// ID is the client-assigned row identifier (UUID).
	ID string `json:"id"`

	Kind MetricKind `json:"kind"`

	// RecordedAt places the record on the sync timeline. For interval
	// records (sleep, workouts) this is the interval start.
	RecordedAt time.Time `json:"recorded_at"`

	Payload json.RawMessage `json:"payload"`
}
