package middleware

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingErrorMessage(t *testing.T) {
	type form struct {
		Month  string `validate:"required"`
		Amount string `validate:"required"`
	}

	err := validator.New().Struct(form{})
	require.Error(t, err)

	msg := BindingErrorMessage(err, "Month and amount are required.")
	assert.Equal(t, "Month is required.", msg)
}

func TestBindingErrorMessage_Fallback(t *testing.T) {
	msg := BindingErrorMessage(errors.New("unexpected EOF"), "Month and amount are required.")
	assert.Equal(t, "Month and amount are required.", msg)
}
