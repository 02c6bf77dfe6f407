package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// tagTreeColor accepts the #rrggbb form stored in the color column
const tagTreeColor = "treecolor"

var treeColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validator checks request structs. Field names in errors follow the JSON tags.
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	shared        *Validator
)

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		shared = newValidator()
	})
	return shared
}

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation(tagTreeColor, func(fl validator.FieldLevel) bool {
		return treeColorPattern.MatchString(fl.Field().String())
	})
	return &Validator{validate: v}
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// ValidateStruct validates a struct using its validate tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into field -> message pairs.
// Nested fields keep their path, e.g. "events[0].type".
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": ErrMsgInvalidRequest}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		out[fieldPath(e)] = fieldMessage(e)
	}
	return out
}

func fieldPath(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case tagTreeColor:
		return ErrMsgInvalidColor
	case "max":
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	case "gte", "lte", "gt":
		return "Out of range"
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", e.Param())
	default:
		return "Invalid value"
	}
}
