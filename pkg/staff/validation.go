package staff

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "bson"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// validateStruct returns a Validation error describing the first failed field of s
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	switch e.Tag() {
	case "required":
		return validationError(fmt.Sprintf("%s is required", e.Field()))
	case "oneof":
		return validationError(fmt.Sprintf("%s must be one of: %s", e.Field(), strings.ReplaceAll(e.Param(), " ", ", ")))
	case "datetime":
		return validationError(fmt.Sprintf("%s must be a time in HH:MM format", e.Field()))
	case "gt":
		return validationError(fmt.Sprintf("%s must be greater than %s", e.Field(), e.Param()))
	case "max":
		return validationError(fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param()))
	default:
		return validationError(fmt.Sprintf("%s is invalid", e.Field()))
	}
}
