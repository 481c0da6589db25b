package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal is one logged meal. SessionID correlates the row with the anonymous
// session that created it and is never changed afterwards.
type Meal struct {
	ID          string  `gorm:"primaryKey;type:text" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	DateTime    string  `gorm:"column:date_time;not null" json:"date_time"`
	IsInDiet    bool    `gorm:"column:is_in_diet;not null" json:"is_in_diet"`
	SessionID   *string `gorm:"column:session_id;index:idx_meals_session_id" json:"session_id"`
}

func (Meal) TableName() string {
	return "meals"
}

func (meal *Meal) BeforeCreate(*gorm.DB) error {
	if meal.ID == "" {
		meal.ID = uuid.NewString()
	}
	return nil
}

// MealDetails holds the fields a client may set on create and replace on update.
type MealDetails struct {
	Name        string
	Description string
	DateTime    string
	IsInDiet    bool
}
