package db

import (
	"context"

	"gorm.io/gorm"
)

type Repositories struct {
	database *gorm.DB
	Meals    *MealRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		database: database,
		Meals:    NewMealRepository(database),
	}
}

func (repos *Repositories) Ping(ctx context.Context) error {
	return Ping(ctx, repos.database)
}
