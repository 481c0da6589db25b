package api

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/mealdiet/internal/models"
)

const canonicalUUIDLength = 36

// inputError is a rejected request field set. It never reaches storage.
type inputError struct {
	message    string
	violations []fieldViolation
}

func (err *inputError) Error() string {
	return err.message
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, key := range []string{"json", "params", "query"} {
			name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	_ = validate.RegisterValidation("canonical_uuid", isCanonicalUUID)
	return validate
}

// isCanonicalUUID accepts only the hyphenated 8-4-4-4-12 form, in either case.
func isCanonicalUUID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != canonicalUUIDLength {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}

func (handler *Handler) parseMealPayload(c *fiber.Ctx) (models.MealDetails, error) {
	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.MealDetails{}, &inputError{message: "invalid payload", violations: decodeViolations(err)}
	}
	if err := handler.validate.Struct(payload); err != nil {
		return models.MealDetails{}, &inputError{message: "invalid payload", violations: validationViolations(err)}
	}

	return models.MealDetails{
		Name:        *payload.Name,
		Description: *payload.Description,
		DateTime:    *payload.DateTime,
		IsInDiet:    *payload.IsInDiet,
	}, nil
}

func (handler *Handler) parseMealID(c *fiber.Ctx) (string, error) {
	params := mealIDParams{}
	if err := c.ParamsParser(&params); err != nil {
		return "", &inputError{message: "invalid meal id", violations: []fieldViolation{{Field: "id", Rule: "format"}}}
	}
	if err := handler.validate.Struct(params); err != nil {
		return "", &inputError{message: "invalid meal id", violations: validationViolations(err)}
	}
	return params.ID, nil
}

func decodeViolations(err error) []fieldViolation {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []fieldViolation{{Field: typeErr.Field, Rule: "type"}}
	}
	return []fieldViolation{{Field: "body", Rule: "json"}}
}

func validationViolations(err error) []fieldViolation {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil
	}

	violations := make([]fieldViolation, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		violations = append(violations, fieldViolation{Field: fieldErr.Field(), Rule: fieldErr.Tag()})
	}
	return violations
}
