package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoodItem_OptionalFieldsOmitted(t *testing.T) {
	raw, err := json.Marshal(FoodItem{Name: "apple"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"apple"}`, string(raw))
}

func TestDietCreateEntryRequest_OptionalFieldsOmitted(t *testing.T) {
	raw, err := json.Marshal(DietCreateEntryRequest{
		DeviceID: "device-1",
		EatenAt:  "2026-03-14T12:30:00Z",
		MealType: MealTypeLunch,
		Items:    []FoodItem{{Name: "rice"}},
	})
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "notes")
	assert.NotContains(t, string(raw), "plan_id")
	assert.NotContains(t, string(raw), "source")
}
