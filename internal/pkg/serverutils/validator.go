package serverutils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateRequest runs the struct's validate tags and reports the first
// violation as a 400 AppError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return BadRequest("Invalid request")
	}

	fe := validationErrs[0]
	switch fe.Tag() {
	case "required":
		return BadRequest(fmt.Sprintf("%s is required", fe.Field()))
	case "email":
		return BadRequest(fmt.Sprintf("%s must be a valid email address", fe.Field()))
	case "min":
		return BadRequest(fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param()))
	case "max":
		return BadRequest(fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param()))
	default:
		return BadRequest(fmt.Sprintf("%s is invalid", fe.Field()))
	}
}
