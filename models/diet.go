// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MealType classifies a diet entry by the meal it belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// NutritionTotals is a macro-nutrient aggregate.
// The zero value is a valid "nothing eaten" total.
type NutritionTotals struct {
	CaloriesKcal float64 `json:"calories_kcal"`
	ProteinG     float64 `json:"protein_g"`
	CarbsG       float64 `json:"carbs_g"`
	FatG         float64 `json:"fat_g"`
}

// FoodItem is a single recognized or user-entered food with optional
// portion and nutrition estimates. Optional fields serialize as absent.
type FoodItem struct {
	// Name is the food name, e.g. "rice" or "apple".
	Name string `json:"name"`

	// Portion is a human-readable portion description, e.g. "1 bowl".
	Portion *string `json:"portion,omitempty"`

	// Grams is the estimated weight of the portion.
	Grams *float64 `json:"grams,omitempty"`

	CaloriesKcal *float64 `json:"calories_kcal,omitempty"`
	ProteinG     *float64 `json:"protein_g,omitempty"`
	CarbsG       *float64 `json:"carbs_g,omitempty"`
	FatG         *float64 `json:"fat_g,omitempty"`

	// Confidence is the recognizer's 0–1 confidence for this item.
	Confidence *float64 `json:"confidence,omitempty"`
}

// DietEntry is one logged meal event as stored by the backend.
type DietEntry struct {
	EntryID   string          `json:"entry_id"`
	DeviceID  string          `json:"device_id"`
	CreatedAt string          `json:"created_at"`
	EatenAt   string          `json:"eaten_at"`
	MealType  MealType        `json:"meal_type"`
	Items     []FoodItem      `json:"items"`
	Totals    NutritionTotals `json:"totals"`
	Notes     *string         `json:"notes,omitempty"`
	Source    string          `json:"source"`
	Warnings  []string        `json:"warnings"`
}

// DietDailySummary is the nutrition aggregate for one calendar day inside a
// queried window.
type DietDailySummary struct {
	// Date is the calendar day in "2006-01-02" form.
	Date string `json:"date"`

	Totals NutritionTotals `json:"totals"`

	// EntryCount is the number of entries contributing to Totals.
	EntryCount int `json:"entry_count"`
}
