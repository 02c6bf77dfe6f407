package tree

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// ValidationError lists the request fields that failed validation
type ValidationError struct {
	Fields validator.ValidationErrors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, strings.ToLower(f.Field())+":"+f.Tag())
	}
	return domain.ErrMsgInvalidInput + ": " + strings.Join(names, ", ")
}

// Is lets callers match validation failures with domain.ErrInvalidInput,
// and a missing name with domain.ErrNameRequired.
func (e *ValidationError) Is(target error) bool {
	if target == domain.ErrInvalidInput {
		return true
	}
	if target == domain.ErrNameRequired {
		for _, f := range e.Fields {
			if f.Field() == "Name" && f.Tag() == "required" {
				return true
			}
		}
	}
	if target == domain.ErrInvalidColor {
		for _, f := range e.Fields {
			if f.Field() == "Color" {
				return true
			}
		}
	}
	return false
}
