package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDetailsValidationErrors(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
		Name  string `json:"name" validate:"required"`
	}

	v := validator.New()
	err := v.Struct(payload{Email: "not-an-email"})
	require.Error(t, err)

	details := ToDetails(err)
	assert.Equal(t, "must be a valid email address", details["Email"])
	assert.Equal(t, "is required", details["Name"])
}

func TestToDetailsNil(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
}

func TestToDetailsFallback(t *testing.T) {
	details := ToDetails(assert.AnError)
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)
}
