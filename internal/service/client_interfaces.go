package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-health-diary/models"
)

// ClientAuthService defines the client-side contract for signing in and
// inspecting the current session. Implementations are responsible for storing
// the bearer token in the server adapter after a successful login.
type ClientAuthService interface {
	// Login authenticates the user against the server with email/password
	// credentials. On success the adapter holds the bearer token and the
	// signed-in profile is returned.
	Login(ctx context.Context, creds models.Credentials) (models.Profile, error)

	// Profile fetches the identity record of the signed-in account.
	Profile(ctx context.Context) (models.Profile, error)

	// SessionValid reports whether the stored bearer token exists and has
	// not expired as of now. The check is local: no network call is made and
	// the token signature is not verified.
	SessionValid(now time.Time) bool
}

// DietService is the read-model orchestrator behind the diet dashboard. It
// owns the dashboard state and is its only writer; callers observe the state
// through copied snapshots.
type DietService interface {
	// State returns a copy of the current dashboard state. The returned
	// value is never mutated by the service afterwards.
	State() DashboardState

	// Refresh rebuilds the dashboard from the backend: the 7-day summary
	// window and the recent entries page are fetched concurrently and
	// replace the previous data only when both succeed. Profile and plan
	// fetches follow; their failures degrade the view but never fail the
	// refresh. A Refresh that starts while another is still running returns
	// immediately without touching state.
	Refresh(ctx context.Context)

	// Recognize submits a captured food photo for recognition. An empty
	// image or an unsupported media type fails with [ErrEncodingFailed]
	// before any network call.
	Recognize(ctx context.Context, image CapturedImage) (models.DietRecognizeResponse, error)

	// SaveEntry persists one meal event built from recognized items. Notes
	// are trimmed of surrounding whitespace and the entry is tagged with
	// source "vision".
	SaveEntry(ctx context.Context, eatenAt time.Time, mealType models.MealType, items []models.FoodItem, notes string, planID *string) (models.DietCreateEntryResponse, error)
}

// HealthSyncService buffers captured health metrics locally and uploads them
// in windowed batches.
type HealthSyncService interface {
	// RecordSteps buffers one daily step count.
	RecordSteps(ctx context.Context, steps models.DailySteps) error

	// RecordHeartRate buffers point-in-time heart rate samples.
	RecordHeartRate(ctx context.Context, samples ...models.HeartRateSample) error

	// RecordRestingHeartRate buffers one daily resting heart rate.
	RecordRestingHeartRate(ctx context.Context, resting models.RestingHeartRate) error

	// RecordSpO2 buffers blood-oxygen readings.
	RecordSpO2(ctx context.Context, readings ...models.SpO2Reading) error

	// RecordSleep buffers one sleep session interval.
	RecordSleep(ctx context.Context, session models.SleepSession) error

	// RecordWorkout buffers one workout interval.
	RecordWorkout(ctx context.Context, workout models.WorkoutRecord) error

	// Sync uploads every buffered record observed in the half-open window
	// [last successful sync end, now). A device that has never synced starts
	// from now minus 24 hours. When nothing is buffered Sync returns an
	// empty acknowledgment without calling the server. On acknowledgment the
	// uploaded records are pruned and the window end becomes the new
	// watermark; a response with status "error" leaves the buffer intact and
	// fails with [ErrServerRejected].
	Sync(ctx context.Context, now time.Time) (models.HealthSyncResponse, error)
}

// ClientSyncJob defines the contract for a background worker that
// periodically uploads buffered health metrics.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
