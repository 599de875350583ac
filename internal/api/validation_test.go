package api

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Nick  string `validate:"max=3"`
	Level int    `validate:"gte=1,lte=5"`
}

func TestValidationErrors(t *testing.T) {
	err := validator.New().Struct(sample{Nick: "toolong", Level: 9})
	require.Error(t, err)

	details := ValidationErrors(err)
	require.Len(t, details, 3)

	assert.Equal(t, ValidationError{Field: "Name", Tag: "required", Message: "Name is required"}, details[0])
	assert.Equal(t, "Nick must be at most 3 characters", details[1].Message)
	assert.Equal(t, "Level must be less than or equal to 5", details[2].Message)
}

func TestValidationErrors_OtherError(t *testing.T) {
	assert.Nil(t, ValidationErrors(assert.AnError))
}
