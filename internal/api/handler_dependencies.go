package api

import (
	"github.com/terraincognita07/mealdiet/internal/db"
	"github.com/terraincognita07/mealdiet/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.mealService = services.NewMealService(handler.repositories.Meals)
	return handler
}

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}
	if handler.mealService == nil {
		handler.mealService = services.NewMealService(handler.repositories.Meals)
	}
	if handler.validate == nil {
		handler.validate = newValidator()
	}
}
