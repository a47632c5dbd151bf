// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Sync acknowledgment statuses reported by the backend.
const (
	SyncStatusOK      = "ok"
	SyncStatusPartial = "partial"
	SyncStatusError   = "error"
)

// HealthSyncResponse is the backend's acknowledgment of a
// [HealthSyncRequest].
type HealthSyncResponse struct {
	// Status is one of SyncStatusOK, SyncStatusPartial or SyncStatusError.
	Status string `json:"status"`

	// Message is free-text commentary on the outcome.
	Message string `json:"message"`

	// ReceivedCounts maps each collection name (as it appears on the wire,
	// e.g. "daily_steps") to the number of records the backend accepted.
	ReceivedCounts map[string]int `json:"received_counts"`

	// SyncID is the opaque correlation token assigned to an accepted
	// request. It is unique per accepted sync and is the authoritative
	// handle for later inquiry. Empty when the request carried no records.
	SyncID string `json:"sync_id"`
}

// Accepted reports whether the backend accepted the sync, fully or in part.
func (r HealthSyncResponse) Accepted() bool {
	return r.Status == SyncStatusOK || r.Status == SyncStatusPartial
}
