package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPasswordReset(t *testing.T) {
	t.Parallel()

	tm := NewTemplateManager()

	body, err := tm.Render("password_reset", TemplateData{
		"ResetLink": "http://localhost:3000/reset-password/abc123",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "http://localhost:3000/reset-password/abc123")
	assert.Contains(t, body, "reset your password")
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()

	tm := NewTemplateManager()

	_, err := tm.Render("no_such_template", TemplateData{})
	assert.Error(t, err)
}

func TestAddTemplateOverrides(t *testing.T) {
	t.Parallel()

	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("password_reset", `custom: {{.ResetLink}}`))

	body, err := tm.Render("password_reset", TemplateData{"ResetLink": "x"})
	require.NoError(t, err)
	assert.Equal(t, "custom: x", body)
}
