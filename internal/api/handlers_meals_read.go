package api

import "github.com/gofiber/fiber/v2"

// ListMeals and the other read handlers sit behind SessionRequired, which owns the 401.
func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	handler.ensureDependencies()
	sessionID := guardedSession(c)

	meals, err := handler.mealService.ListMeals(c.UserContext(), sessionID)
	if err != nil {
		return handler.persistenceError(c, err, "failed to fetch meals")
	}
	return c.JSON(mealsResponse{Meals: toMealResponses(meals)})
}

func (handler *Handler) FetchMeals(c *fiber.Ctx) error {
	handler.ensureDependencies()
	sessionID := guardedSession(c)

	meals, err := handler.mealService.SearchMeals(c.UserContext(), sessionID, c.Query("name"))
	if err != nil {
		return handler.persistenceError(c, err, "failed to fetch meals")
	}
	return c.JSON(fetchMealsResponse{FetchMealsToName: toMealResponses(meals)})
}

func (handler *Handler) SummarizeMeals(c *fiber.Ctx) error {
	handler.ensureDependencies()
	sessionID := guardedSession(c)

	summary, err := handler.mealService.Summarize(c.UserContext(), sessionID)
	if err != nil {
		return handler.persistenceError(c, err, "failed to summarize meals")
	}
	return c.JSON(summaryResponse{
		TotalMeals:      summary.TotalMeals,
		TotalMealsTrue:  summary.TotalMealsTrue,
		TotalMealsFalse: summary.TotalMealsFalse,
		MealsInDiet:     toMealResponses(summary.MealsInDiet),
	})
}
