package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Size     int    `json:"size" validate:"omitempty,max=5"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Username: "ana", Email: "ana@example.com"}))

	err := v.Validate(&sample{Email: "nope", Size: 9})
	require.Error(t, err)
	assert.Equal(t, "Username: required; Email: email; Size: max=5", err.Error())
}
