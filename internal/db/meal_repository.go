package db

import (
	"context"
	"strings"

	"github.com/terraincognita07/mealdiet/internal/models"
	"gorm.io/gorm"
)

var likePatternEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) Create(ctx context.Context, meal *models.Meal) error {
	return repo.database.WithContext(ctx).Create(meal).Error
}

func (repo *MealRepository) ListBySession(ctx context.Context, sessionID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// SearchByName matches name as a literal substring; LIKE wildcards in it are escaped.
func (repo *MealRepository) SearchByName(ctx context.Context, sessionID string, name string) ([]models.Meal, error) {
	query := repo.database.WithContext(ctx).Where("session_id = ?", sessionID)
	if name != "" {
		query = query.Where(`name LIKE ? ESCAPE '\'`, "%"+likePatternEscaper.Replace(name)+"%")
	}

	meals := make([]models.Meal, 0)
	if err := query.Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).Model(&models.Meal{}).
		Where("session_id = ?", sessionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *MealRepository) CountBySessionAndDiet(ctx context.Context, sessionID string, inDiet bool) (int64, error) {
	var count int64
	if err := repo.database.WithContext(ctx).Model(&models.Meal{}).
		Where("session_id = ? AND is_in_diet = ?", sessionID, inDiet).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *MealRepository) ListBySessionAndDiet(ctx context.Context, sessionID string, inDiet bool) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.WithContext(ctx).
		Where("session_id = ? AND is_in_diet = ?", sessionID, inDiet).
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// UpdateByID replaces the mutable fields of one meal and reports the affected row count.
func (repo *MealRepository) UpdateByID(ctx context.Context, id string, details models.MealDetails) (int64, error) {
	result := repo.database.WithContext(ctx).Model(&models.Meal{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":        details.Name,
			"description": details.Description,
			"date_time":   details.DateTime,
			"is_in_diet":  details.IsInDiet,
		})
	return result.RowsAffected, result.Error
}

func (repo *MealRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := repo.database.WithContext(ctx).Where("id = ?", id).Delete(&models.Meal{})
	return result.RowsAffected, result.Error
}
