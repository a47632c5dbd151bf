// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DietRecognizeRequest asks the backend to identify foods on a captured
// photo. The image travels as raw base64 without a data-url prefix.
type DietRecognizeRequest struct {
	DeviceID string `json:"device_id"`

	// CapturedAt is the capture timestamp, RFC3339.
	CapturedAt string `json:"captured_at"`

	// ImageMIME is the image media type, one of image/jpeg, image/jpg,
	// image/png or image/heic.
	ImageMIME string `json:"image_mime"`

	ImageBase64 string `json:"image_base64"`

	// Locale hints the recognizer's output language, e.g. "zh-CN".
	Locale *string `json:"locale,omitempty"`
}

// DietCreateEntryRequest persists one meal event on the backend.
type DietCreateEntryRequest struct {
	DeviceID string     `json:"device_id"`
	EatenAt  string     `json:"eaten_at"`
	MealType MealType   `json:"meal_type"`
	Items    []FoodItem `json:"items"`

	// Notes is optional free text. An empty string is a deliberate "no
	// notes" value and is transmitted as such, not dropped.
	Notes *string `json:"notes,omitempty"`

	// Source records the entry's provenance, e.g. "vision" for entries
	// derived from photo recognition.
	Source *string `json:"source,omitempty"`

	// PlanID links the entry to a nutrition plan when one is active.
	PlanID *string `json:"plan_id,omitempty"`
}
