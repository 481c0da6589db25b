package api

// mealPayload uses pointers so that an absent field is distinguishable from
// an empty string or false.
type mealPayload struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	DateTime    *string `json:"date_time" validate:"required"`
	IsInDiet    *bool   `json:"is_in_diet" validate:"required"`
}

type mealIDParams struct {
	ID string `params:"id" validate:"required,canonical_uuid"`
}
