package utils

import (
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
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct runs struct tag validation and returns the first failure as
// a human-readable error, or nil when the payload is valid.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		switch first.Tag() {
		case "required":
			return fmt.Errorf("%s is required", first.Field())
		case "max":
			return fmt.Errorf("%s must be at most %s characters long", first.Field(), first.Param())
		default:
			return fmt.Errorf("%s is invalid", first.Field())
		}
	}

	return err
}
