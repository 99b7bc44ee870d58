package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "aperture/internal/platform/errors"
)

const (
	notBlankTag = "notblank"
	maxBytesTag = "maxbytes"
)

// Messages maps "field.tag" (json field names) to user-facing text.
type Messages map[string]string

var shared = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(notBlankTag, notBlank)
	_ = v.RegisterValidation(maxBytesTag, maxBytes)
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

// maxBytes bounds the encoded length of a string; max= counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	str, ok := fl.Field().Interface().(string)
	return ok && len(str) <= limit
}

// Struct validates input and reports the first failing field as an
// apperrors.ValidationError.
func Struct(input any, messages Messages) error {
	err := shared.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}
	first := fieldErrs[0]
	msg, ok := messages[first.Field()+"."+first.Tag()]
	if !ok {
		msg = fmt.Sprintf("%s is invalid.", first.Field())
	}
	return apperrors.NewValidationError(first.Field(), msg)
}
