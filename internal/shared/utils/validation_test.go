package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saase/requesthub/internal/shared/errors"
)

type sample struct {
	Email       string `json:"email" validate:"required,email"`
	Description string `json:"description" validate:"required,min=10"`
}

func TestValidateStruct_ListsEveryField(t *testing.T) {
	err := ValidateStruct(sample{Email: "nope", Description: "short"})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.True(t, errors.IsValidationError(err))

	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	assert.ElementsMatch(t, []string{"email", "description"}, names)
}

func TestValidateStruct_Valid(t *testing.T) {
	assert.NoError(t, ValidateStruct(sample{Email: "a@b.co", Description: "long enough text"}))
}
