package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GreenMap_Go/internal/viewport"
)

func TestFormatValidationError(t *testing.T) {
	err := GetValidator().ValidateStruct(CreateTreeRequest{X: -1, Y: 10, Color: "red"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["name"])
	assert.Equal(t, "Out of range", fields["x"])
	assert.Equal(t, ErrMsgInvalidColor, fields["color"])
	assert.NotContains(t, fields, "y")
}

func TestFormatValidationError_NotValidationErrors(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": ErrMsgInvalidRequest}, FormatValidationError(errors.New("boom")))
}

func TestFormatValidationError_NestedPath(t *testing.T) {
	req := GestureRequest{Events: []viewport.RawEvent{rawEvent("wheel"), rawEvent("spin")}}

	fields := FormatValidationError(GetValidator().ValidateStruct(req))
	require.Len(t, fields, 1)
	assert.Contains(t, fields["events[1].type"], "Must be one of")
}

func TestTreeColorTag(t *testing.T) {
	tests := []struct {
		color string
		ok    bool
	}{
		{"", true},
		{"#16a34a", true},
		{"#ABCDEF", true},
		{"#abc", false},
		{"16a34a0", false},
		{"#16a34g", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			err := GetValidator().ValidateStruct(FormRequest{Name: "Oak", Color: tt.color})
			assert.Equal(t, tt.ok, err == nil, "%v", err)
		})
	}
}

func TestValidateStruct_Gestures(t *testing.T) {
	assert.Error(t, GetValidator().ValidateStruct(GestureRequest{}))

	var req GestureRequest
	req.Events = append(req.Events, rawEvent("spin"))
	assert.Error(t, GetValidator().ValidateStruct(req))

	req.Events[0] = rawEvent("wheel")
	assert.NoError(t, GetValidator().ValidateStruct(req))
}
