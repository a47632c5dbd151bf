// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthSyncRequest is the envelope the client sends to upload locally
// captured health metrics. The JSON field names are a hard contract with the
// backend — renaming any of them is a breaking change.
//
// SyncStart and SyncEnd describe the half-open window [SyncStart, SyncEnd)
// of record eligibility; SyncStart never exceeds SyncEnd. Each collection may
// be empty. Within a collection the original capture order is preserved.
type HealthSyncRequest struct {
	// DeviceID is the stable per-installation device identifier.
	DeviceID string `json:"device_id"`

	// SyncStart is the inclusive window start, RFC3339.
	SyncStart string `json:"sync_start"`

	// SyncEnd is the exclusive window end, RFC3339.
	SyncEnd string `json:"sync_end"`

	DailySteps        []DailySteps       `json:"daily_steps"`
	HeartRateSamples  []HeartRateSample  `json:"heart_rate_samples"`
	RestingHeartRates []RestingHeartRate `json:"resting_heart_rates"`
	SpO2Readings      []SpO2Reading      `json:"spo2_readings"`
	SleepSessions     []SleepSession     `json:"sleep_sessions"`
	Workouts          []WorkoutRecord    `json:"workouts"`
}

// NewHealthSyncRequest returns a request for the given device and window with
// every collection initialised to empty, so an untouched request still
// serializes all six collection keys as [].
func NewHealthSyncRequest(deviceID, syncStart, syncEnd string) HealthSyncRequest {
	return HealthSyncRequest{
		DeviceID:          deviceID,
		SyncStart:         syncStart,
		SyncEnd:           syncEnd,
		DailySteps:        []DailySteps{},
		HeartRateSamples:  []HeartRateSample{},
		RestingHeartRates: []RestingHeartRate{},
		SpO2Readings:      []SpO2Reading{},
		SleepSessions:     []SleepSession{},
		Workouts:          []WorkoutRecord{},
	}
}

// RecordCount returns the total number of metric records across all six
// collections. A request with RecordCount zero is not worth transmitting.
func (r HealthSyncRequest) RecordCount() int {
	return len(r.DailySteps) +
		len(r.HeartRateSamples) +
		len(r.RestingHeartRates) +
		len(r.SpO2Readings) +
		len(r.SleepSessions) +
		len(r.Workouts)
}
