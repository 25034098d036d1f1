package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report config keys rather than Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validation failed: %w", err)
	}

	errMsgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		key := fe.Namespace()
		if _, rest, ok := strings.Cut(key, "."); ok {
			key = rest
		}
		errMsgs = append(errMsgs, fmt.Sprintf(
			"Field: %s, Tag: %s, Param: %s", key, fe.Tag(), fe.Param(),
		))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(errMsgs, "; "))
}
