package validator

import (
	stdErrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/itinerary-service/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report fields under their JSON names so clients can map errors back
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FieldErrors converts validation errors into field-scoped payload errors.
// Errors that are not validation errors yield a single entry for "body".
func FieldErrors(err error) []errors.FieldError {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stdErrors.As(err, &verrs) {
		return []errors.FieldError{{Field: "body", Message: err.Error()}}
	}

	result := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		result = append(result, errors.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return result
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "datetime":
		return fmt.Sprintf("must be a valid calendar date (%s)", "YYYY-MM-DD")
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
