// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-health-diary/internal/config"
	"github.com/MKhiriev/go-health-diary/internal/logger"
	"github.com/MKhiriev/go-health-diary/internal/utils"
	"github.com/MKhiriev/go-health-diary/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login and stores the bearer token returned in the response
// body via SetToken. Returns the signed-in profile, or an error if the
// request fails, the server returns a non-2xx status, or the body cannot be
// decoded.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Profile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Profile{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.Profile{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth.User, nil
}

// GetProfile implements [ServerAdapter]. It GETs GET /api/auth/me and
// decodes the signed-in account's identity record. Requires a valid bearer
// token.
func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	resp, err := h.authedRequest(ctx).Get("/api/auth/me")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

// SyncHealthData implements [ServerAdapter]. It POSTs the metric batch to
// POST /api/healthkit/sync and decodes the acknowledgment. The response is
// returned as decoded even when its status field reports a partial or failed
// ingest — judging the status is the caller's concern. Requires a valid
// bearer token.
func (h *httpServerAdapter) SyncHealthData(ctx context.Context, req models.HealthSyncRequest) (models.HealthSyncResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/healthkit/sync")
	if err != nil {
		return models.HealthSyncResponse{}, fmt.Errorf("health sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthSyncResponse{}, err
	}

	var ack models.HealthSyncResponse
	if err = json.Unmarshal(resp.Body(), &ack); err != nil {
		return models.HealthSyncResponse{}, fmt.Errorf("decode health sync response: %w", err)
	}

	return ack, nil
}

// GetDietSummary implements [ServerAdapter]. It GETs
// GET /api/diet/summary/{device_id}?start=&end= and decodes the per-day
// aggregates. Requires a valid bearer token.
func (h *httpServerAdapter) GetDietSummary(ctx context.Context, deviceID, start, end string) (models.DietSummaryResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{"start": start, "end": end}).
		Get("/api/diet/summary/" + url.PathEscape(deviceID))
	if err != nil {
		return models.DietSummaryResponse{}, fmt.Errorf("get diet summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DietSummaryResponse{}, err
	}

	var summary models.DietSummaryResponse
	if err = json.Unmarshal(resp.Body(), &summary); err != nil {
		return models.DietSummaryResponse{}, fmt.Errorf("decode diet summary response: %w", err)
	}

	return summary, nil
}

// GetDietEntries implements [ServerAdapter]. It GETs a page of meal events
// from GET /api/diet/entries/{device_id}. Requires a valid bearer token.
func (h *httpServerAdapter) GetDietEntries(ctx context.Context, deviceID, start, end string, limit, offset int) (models.DietEntriesResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"start":  start,
			"end":    end,
			"limit":  strconv.Itoa(limit),
			"offset": strconv.Itoa(offset),
		}).
		Get("/api/diet/entries/" + url.PathEscape(deviceID))
	if err != nil {
		return models.DietEntriesResponse{}, fmt.Errorf("get diet entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DietEntriesResponse{}, err
	}

	var entries models.DietEntriesResponse
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return models.DietEntriesResponse{}, fmt.Errorf("decode diet entries response: %w", err)
	}

	return entries, nil
}

// RecognizeFood implements [ServerAdapter]. It POSTs the encoded photo to
// POST /api/diet/recognize and decodes the recognizer's verdict. Requires a
// valid bearer token.
func (h *httpServerAdapter) RecognizeFood(ctx context.Context, req models.DietRecognizeRequest) (models.DietRecognizeResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/diet/recognize")
	if err != nil {
		return models.DietRecognizeResponse{}, fmt.Errorf("recognize food request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DietRecognizeResponse{}, err
	}

	var result models.DietRecognizeResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.DietRecognizeResponse{}, fmt.Errorf("decode recognize response: %w", err)
	}

	return result, nil
}

// CreateDietEntry implements [ServerAdapter]. It POSTs the meal event to
// POST /api/diet/entries and decodes the acknowledgment. Requires a valid
// bearer token.
func (h *httpServerAdapter) CreateDietEntry(ctx context.Context, req models.DietCreateEntryRequest) (models.DietCreateEntryResponse, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/diet/entries")
	if err != nil {
		return models.DietCreateEntryResponse{}, fmt.Errorf("create diet entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DietCreateEntryResponse{}, err
	}

	var created models.DietCreateEntryResponse
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.DietCreateEntryResponse{}, fmt.Errorf("decode create entry response: %w", err)
	}

	return created, nil
}

// GetNutritionPlan implements [ServerAdapter]. It GETs
// GET /api/plans/nutrition/{owner_id}?date= and decodes the latest confirmed
// plan. A 404 surfaces as an error wrapping [ErrNotFound]. Requires a valid
// bearer token.
func (h *httpServerAdapter) GetNutritionPlan(ctx context.Context, ownerID, date string) (models.NutritionPlan, error) {
	req := h.authedRequest(ctx)
	if date != "" {
		req.SetQueryParam("date", date)
	}

	resp, err := req.Get("/api/plans/nutrition/" + url.PathEscape(ownerID))
	if err != nil {
		return models.NutritionPlan{}, fmt.Errorf("get nutrition plan request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NutritionPlan{}, err
	}

	var plan models.NutritionPlan
	if err = json.Unmarshal(resp.Body(), &plan); err != nil {
		return models.NutritionPlan{}, fmt.Errorf("decode nutrition plan response: %w", err)
	}

	return plan, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
