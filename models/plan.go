package models

// NutritionPlan is the latest confirmed nutrition plan for an owner.
// Macros and Constraints are model-generated documents whose shape is not
// fixed by the backend, so they stay as loose maps.
type NutritionPlan struct {
	PlanID      string           `json:"plan_id"`
	Title       *string          `json:"title,omitempty"`
	Summary     string           `json:"summary"`
	Macros      map[string]any   `json:"macros,omitempty"`
	Meals       []map[string]any `json:"meals"`
	Constraints map[string]any   `json:"constraints,omitempty"`
	GeneratedAt *string          `json:"generated_at,omitempty"`
	ValidFrom   *string          `json:"valid_from,omitempty"`
	ValidTo     *string          `json:"valid_to,omitempty"`
}
