package tree

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"github.com/osse101/GreenMap_Go/internal/domain"
)

// CreateRequest is the input to Service.Create
type CreateRequest struct {
	X         float64              `json:"x" validate:"gte=0,lte=800"`
	Y         float64              `json:"y" validate:"gte=0,lte=600"`
	Name      string               `json:"name" validate:"required,max=255"`
	Color     string               `json:"color" validate:"omitempty,hexcolor,len=7"`
	Timestamp string               `json:"timestamp" validate:"omitempty,iso8601"`
	Image     *domain.ImagePayload `json:"-"`
	SessionID string               `json:"-"`
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation(validationISO8601, validateISO8601)
	return v
}

func validateISO8601(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.RFC3339, fl.Field().String())
	return err == nil
}

// NormalizeName trims the name, collapses inner whitespace and applies
// Unicode NFC so visually equal names compare equal.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.Join(strings.Fields(name), " "))
}

// NormalizeColor lowercases a hex color
func NormalizeColor(c string) string {
	return strings.ToLower(strings.TrimSpace(c))
}
