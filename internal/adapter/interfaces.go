// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating
// with the health-diary backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for a missing nutrition plan,
// [ErrUnauthorized] for an expired session).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-health-diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// health-diary backend. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
//
// Every operation performs exactly one attempt: the adapter never retries,
// and callers must not assume any call is idempotent.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with the backend using email/password
	// credentials. On success the returned bearer token is stored via
	// SetToken and the signed-in profile is returned.
	Login(ctx context.Context, creds models.Credentials) (models.Profile, error)

	// GetProfile fetches the identity record of the signed-in account.
	// The profile's ID is the canonical owner id for plan and summary reads.
	GetProfile(ctx context.Context) (models.Profile, error)

	// SyncHealthData uploads a batch of locally captured health metrics and
	// returns the backend's acknowledgment. A transport or HTTP failure is
	// returned as an error; a decoded response with status "error" is
	// returned as-is for the caller to judge.
	SyncHealthData(ctx context.Context, req models.HealthSyncRequest) (models.HealthSyncResponse, error)

	// GetDietSummary fetches per-day nutrition aggregates for deviceID over
	// the inclusive calendar-date window [start, end].
	GetDietSummary(ctx context.Context, deviceID, start, end string) (models.DietSummaryResponse, error)

	// GetDietEntries fetches a page of logged meal events for deviceID over
	// [start, end], limit entries starting at offset.
	GetDietEntries(ctx context.Context, deviceID, start, end string, limit, offset int) (models.DietEntriesResponse, error)

	// RecognizeFood submits a captured food photo for recognition and
	// returns the recognized items with their nutrition estimates.
	RecognizeFood(ctx context.Context, req models.DietRecognizeRequest) (models.DietRecognizeResponse, error)

	// CreateDietEntry persists one meal event and returns the stored
	// entry's acknowledgment.
	CreateDietEntry(ctx context.Context, req models.DietCreateEntryRequest) (models.DietCreateEntryResponse, error)

	// GetNutritionPlan fetches the latest confirmed nutrition plan for
	// ownerID effective on the given calendar date. Returns an error
	// wrapping [ErrNotFound] when no plan exists.
	GetNutritionPlan(ctx context.Context, ownerID, date string) (models.NutritionPlan, error)
}
