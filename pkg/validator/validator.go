package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their form name so messages match what the page posted
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	v.RegisterValidation("hhmm", validateClockTime)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = "Le champ " + field + " est obligatoire"
			case "email":
				errors[field] = "Le champ " + field + " doit être une adresse email valide"
			case "datetime":
				errors[field] = "Le champ " + field + " doit respecter le format " + humanLayout(e.Param())
			case "hhmm":
				errors[field] = "Le champ " + field + " doit respecter le format HH:MM"
			case "min":
				errors[field] = "Le champ " + field + " doit contenir au moins " + e.Param() + " caractères"
			case "max":
				errors[field] = "Le champ " + field + " doit contenir au plus " + e.Param() + " caractères"
			case "gt", "gte":
				errors[field] = "Le champ " + field + " est invalide"
			default:
				errors[field] = "Le champ " + field + " est invalide"
			}
		}
	}

	return errors
}

// validateClockTime accepts a zero-padded 24h "HH:MM" only; time.Parse alone
// would also let "9:00" through.
func validateClockTime(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

func humanLayout(layout string) string {
	switch layout {
	case "15:04":
		return "HH:MM"
	case "2006-01-02":
		return "AAAA-MM-JJ"
	}
	return layout
}
