// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DietRecognizeResponse carries the recognizer's verdict on one photo.
type DietRecognizeResponse struct {
	// RequestID is the backend-assigned correlation id for this call.
	RequestID string `json:"request_id"`

	Items  []FoodItem      `json:"items"`
	Totals NutritionTotals `json:"totals"`

	// Warnings lists non-fatal recognition caveats, e.g. low confidence.
	Warnings []string `json:"warnings"`

	// Model names the vision model that produced the result.
	Model string `json:"model"`
}

// DietCreateEntryResponse acknowledges a stored diet entry.
type DietCreateEntryResponse struct {
	EntryID string          `json:"entry_id"`
	SavedAt string          `json:"saved_at"`
	Totals  NutritionTotals `json:"totals"`
}

// DietEntriesResponse is a page of diet entries for one device.
// Count is the total number of matching entries, not the page size.
type DietEntriesResponse struct {
	DeviceID string      `json:"device_id"`
	Count    int         `json:"count"`
	Entries  []DietEntry `json:"entries"`
}

// DietSummaryResponse is the per-day nutrition aggregate over a queried
// window, ordered by day.
type DietSummaryResponse struct {
	DeviceID string `json:"device_id"`

	// Start and End are the queried calendar-date bounds.
	Start string `json:"start"`
	End   string `json:"end"`

	// Totals is the whole-window aggregate.
	Totals NutritionTotals `json:"totals"`

	// Days holds one summary per day in the window.
	Days []DietDailySummary `json:"days"`
}
