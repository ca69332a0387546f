package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalJSONHidesInternalError(t *testing.T) {
	t.Parallel()

	appErr := Wrap(errors.New("dial tcp 10.0.0.5: connection refused"),
		CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "10.0.0.5")
	assert.Contains(t, string(raw), "Internal server error")
}

func TestUnwrapKeepsCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("record not found")
	appErr := Wrap(cause, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)

	assert.ErrorIs(t, appErr, cause)
}

func TestDomainErrorStatuses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusConflict, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, http.StatusNotFound, ErrUserNotFound.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidPassword.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrResetTokenInvalid.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrPasswordMismatch.HTTPCode)
}
