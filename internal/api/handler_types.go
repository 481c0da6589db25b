package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/mealdiet/internal/db"
	"github.com/terraincognita07/mealdiet/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	logger       zerolog.Logger
	cookieSecure bool
	validate     *validator.Validate

	repositories *db.Repositories
	mealService  *services.MealService
}

const sessionCookieTTL = 7 * 24 * time.Hour

const (
	mealUpdatedMessage = "Meal updated successfully"
	mealDeletedMessage = "Meal deleted successfully"
)

type mealsResponse struct {
	Meals []mealResponse `json:"meals"`
}

type fetchMealsResponse struct {
	FetchMealsToName []mealResponse `json:"fetchMealsToName"`
}

type summaryResponse struct {
	TotalMeals      int64          `json:"totalMeals"`
	TotalMealsTrue  int64          `json:"totalMealsTrue"`
	TotalMealsFalse int64          `json:"totalMealsFalse"`
	MealsInDiet     []mealResponse `json:"mealsInDiet"`
}

type mealResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DateTime    string  `json:"date_time"`
	IsInDiet    bool    `json:"is_in_diet"`
	SessionID   *string `json:"session_id"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type fieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type errorResponse struct {
	Error   string           `json:"error"`
	Details []fieldViolation `json:"details,omitempty"`
}
