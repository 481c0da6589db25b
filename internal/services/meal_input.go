package services

import (
	"strings"

	"github.com/terraincognita07/mealdiet/internal/models"
)

// NormalizeMealDetails trims name and description. DateTime is kept verbatim.
func NormalizeMealDetails(details models.MealDetails) models.MealDetails {
	details.Name = strings.TrimSpace(details.Name)
	details.Description = strings.TrimSpace(details.Description)
	return details
}

func NormalizeMealNameQuery(name string) string {
	return strings.TrimSpace(name)
}
