package validator

import (
	"testing"

	"proconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email string          `json:"email" validate:"required,email"`
	Role  models.UserRole `json:"role" validate:"required,is-user-role"`
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&signupForm{
		Email: "user@test.com",
		Role:  models.UserRoleServiceProvider,
	})
	assert.NoError(t, err)
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&signupForm{
		Email: "not-an-email",
		Role:  models.UserRoleStudentClient,
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "email")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	v := New()
	err := v.Validate(&signupForm{
		Email: "user@test.com",
		Role:  "Administrator",
	})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Invalid role selected", vErr.Errors["role"])
}
