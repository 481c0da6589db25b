package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealdiet/internal/logging"
	"github.com/terraincognita07/mealdiet/internal/models"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorResponse{Error: message})
}

func inputErrorResponse(c *fiber.Ctx, err error) error {
	var rejected *inputError
	if errors.As(err, &rejected) {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error:   rejected.message,
			Details: rejected.violations,
		})
	}
	return apiError(c, fiber.StatusBadRequest, "invalid request")
}

// persistenceError logs the storage failure and answers with a generic 500.
func (handler *Handler) persistenceError(c *fiber.Ctx, err error, message string) error {
	handler.logger.Error().
		Err(err).
		Str(logging.Method, c.Method()).
		Str(logging.Path, c.Path()).
		Msg(message)
	return apiError(c, fiber.StatusInternalServerError, message)
}

// ErrorHandler renders errors that escape handlers, including recovered panics, as JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status = fiberErr.Code
		message = fiberErr.Message
	}
	return apiError(c, status, message)
}

func toMealResponses(meals []models.Meal) []mealResponse {
	responses := make([]mealResponse, 0, len(meals))
	for _, meal := range meals {
		responses = append(responses, mealResponse{
			ID:          meal.ID,
			Name:        meal.Name,
			Description: meal.Description,
			DateTime:    meal.DateTime,
			IsInDiet:    meal.IsInDiet,
			SessionID:   meal.SessionID,
		})
	}
	return responses
}
