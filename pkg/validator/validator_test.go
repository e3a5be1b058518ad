package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `validate:"required,min=2"`
	Email  string `validate:"required,email"`
	Status string `validate:"omitempty,oneof=open closed"`
}

func TestValidate_Passes(t *testing.T) {
	cv := NewValidator()
	err := cv.Validate(&sampleRequest{Name: "Ana", Email: "ana@example.com", Status: "open"})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Email: "not-an-email", Status: "pending"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Name is required", formatted["Name"])
	assert.Equal(t, "Email must be a valid email address", formatted["Email"])
	assert.Equal(t, "Status must be one of: open closed", formatted["Status"])
}

func TestFormatValidationErrors_MinTag(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{Name: "A", Email: "ana@example.com"})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Name must be at least 2", formatted["Name"])
}

func TestFormatValidationErrors_NonValidationError(t *testing.T) {
	cv := NewValidator()
	assert.Empty(t, cv.FormatValidationErrors(assert.AnError))
}
