package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=16"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid struct", func(t *testing.T) {
		assert.NoError(t, v.Validate(sample{Email: "ann@x.com", Password: "password1"}))
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(sample{Email: "not-an-email", Password: "short"})
		require.Error(t, err)

		verr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Contains(t, verr.Fields, "email")
		assert.Contains(t, verr.Fields, "password")
		assert.Contains(t, verr.Fields["password"], "at least 8")
	})

	t.Run("missing fields", func(t *testing.T) {
		err := v.Validate(sample{})
		require.Error(t, err)

		verr := err.(*ValidationError)
		assert.Equal(t, "email is required", verr.Fields["email"])
	})
}
