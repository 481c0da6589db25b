package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/terraincognita07/mealdiet/internal/models"
)

var ErrSessionRequired = errors.New("session id is required")

var (
	ErrCreateMealFailed     = errors.New("create meal failed")
	ErrListMealsFailed      = errors.New("list meals failed")
	ErrSummarizeMealsFailed = errors.New("summarize meals failed")
	ErrUpdateMealFailed     = errors.New("update meal failed")
	ErrDeleteMealFailed     = errors.New("delete meal failed")
)

type MealRepository interface {
	Create(ctx context.Context, meal *models.Meal) error
	ListBySession(ctx context.Context, sessionID string) ([]models.Meal, error)
	SearchByName(ctx context.Context, sessionID string, name string) ([]models.Meal, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
	CountBySessionAndDiet(ctx context.Context, sessionID string, inDiet bool) (int64, error)
	ListBySessionAndDiet(ctx context.Context, sessionID string, inDiet bool) ([]models.Meal, error)
	UpdateByID(ctx context.Context, id string, details models.MealDetails) (int64, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

type MealService struct {
	meals MealRepository
}

type MealSummary struct {
	TotalMeals      int64
	TotalMealsTrue  int64
	TotalMealsFalse int64
	MealsInDiet     []models.Meal
}

func NewMealService(meals MealRepository) *MealService {
	return &MealService{meals: meals}
}

func (service *MealService) CreateMeal(ctx context.Context, sessionID string, details models.MealDetails) (models.Meal, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return models.Meal{}, ErrSessionRequired
	}

	details = NormalizeMealDetails(details)
	meal := models.Meal{
		Name:        details.Name,
		Description: details.Description,
		DateTime:    details.DateTime,
		IsInDiet:    details.IsInDiet,
		SessionID:   &sessionID,
	}
	if err := service.meals.Create(ctx, &meal); err != nil {
		return models.Meal{}, fmt.Errorf("%w: %v", ErrCreateMealFailed, err)
	}
	return meal, nil
}

func (service *MealService) ListMeals(ctx context.Context, sessionID string) ([]models.Meal, error) {
	meals, err := service.meals.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListMealsFailed, err)
	}
	return nonNilMeals(meals), nil
}

// SearchMeals returns the session's meals whose name contains name. A blank
// name matches every meal of the session.
func (service *MealService) SearchMeals(ctx context.Context, sessionID string, name string) ([]models.Meal, error) {
	meals, err := service.meals.SearchByName(ctx, sessionID, NormalizeMealNameQuery(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListMealsFailed, err)
	}
	return nonNilMeals(meals), nil
}

// Summarize issues four independent reads; the counts are not taken from a
// single snapshot and may disagree under concurrent writes.
func (service *MealService) Summarize(ctx context.Context, sessionID string) (MealSummary, error) {
	total, err := service.meals.CountBySession(ctx, sessionID)
	if err != nil {
		return MealSummary{}, fmt.Errorf("%w: %v", ErrSummarizeMealsFailed, err)
	}
	inDiet, err := service.meals.CountBySessionAndDiet(ctx, sessionID, true)
	if err != nil {
		return MealSummary{}, fmt.Errorf("%w: %v", ErrSummarizeMealsFailed, err)
	}
	offDiet, err := service.meals.CountBySessionAndDiet(ctx, sessionID, false)
	if err != nil {
		return MealSummary{}, fmt.Errorf("%w: %v", ErrSummarizeMealsFailed, err)
	}
	mealsInDiet, err := service.meals.ListBySessionAndDiet(ctx, sessionID, true)
	if err != nil {
		return MealSummary{}, fmt.Errorf("%w: %v", ErrSummarizeMealsFailed, err)
	}

	return MealSummary{
		TotalMeals:      total,
		TotalMealsTrue:  inDiet,
		TotalMealsFalse: offDiet,
		MealsInDiet:     nonNilMeals(mealsInDiet),
	}, nil
}

// UpdateMeal replaces the mutable fields of the meal with the given id. The
// caller's session is not consulted and a missing id is not an error.
func (service *MealService) UpdateMeal(ctx context.Context, id string, details models.MealDetails) error {
	if _, err := service.meals.UpdateByID(ctx, id, NormalizeMealDetails(details)); err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateMealFailed, err)
	}
	return nil
}

func (service *MealService) DeleteMeal(ctx context.Context, id string) error {
	if _, err := service.meals.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteMealFailed, err)
	}
	return nil
}

func nonNilMeals(meals []models.Meal) []models.Meal {
	if meals == nil {
		return []models.Meal{}
	}
	return meals
}
