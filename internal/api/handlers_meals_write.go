package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealdiet/internal/logging"
)

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	handler.ensureDependencies()

	details, err := handler.parseMealPayload(c)
	if err != nil {
		return inputErrorResponse(c, err)
	}

	sessionID := handler.resolveSession(c)
	meal, err := handler.mealService.CreateMeal(c.UserContext(), sessionID, details)
	if err != nil {
		return handler.persistenceError(c, err, "failed to create meal")
	}

	handler.logger.Debug().Str(logging.MealID, meal.ID).Str(logging.Session, sessionID).Msg("meal created")
	return c.SendStatus(fiber.StatusCreated)
}

// UpdateMeal does not require a session and does not check which session owns the meal.
func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	handler.ensureDependencies()

	details, err := handler.parseMealPayload(c)
	if err != nil {
		return inputErrorResponse(c, err)
	}
	id, err := handler.parseMealID(c)
	if err != nil {
		return inputErrorResponse(c, err)
	}

	if err := handler.mealService.UpdateMeal(c.UserContext(), id, details); err != nil {
		return handler.persistenceError(c, err, "failed to update meal")
	}
	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: mealUpdatedMessage})
}

// DeleteMeal has the same ownership semantics as UpdateMeal.
func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	handler.ensureDependencies()

	id, err := handler.parseMealID(c)
	if err != nil {
		return inputErrorResponse(c, err)
	}

	if err := handler.mealService.DeleteMeal(c.UserContext(), id); err != nil {
		return handler.persistenceError(c, err, "failed to delete meal")
	}
	return c.Status(fiber.StatusOK).JSON(messageResponse{Message: mealDeletedMessage})
}
