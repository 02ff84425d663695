package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authformerrors "github.com/tessier-labs/authform/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "screen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseScreenConfigValid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: "1.0"
title: Welcome back
subtitle: Sign in to continue
theme: dark
width: 48
email:
  placeholder: you@example.com
password:
  placeholder: Password
submit:
  label: Sign in
remember:
  enabled: true
  label: Remember me
  forgot_label: Forgot password?
social:
  enabled: true
  divider_label: or
  providers:
    - id: facebook
      icon: assets/facebook.svg
    - id: google
      icon: assets/google.svg
    - id: apple
      icon: assets/apple.svg
`)

	cfg, err := ParseScreenConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Welcome back", cfg.Title)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 48, cfg.Width)
	assert.True(t, cfg.Remember.Enabled)
	require.Len(t, cfg.Social.Providers, 3)
	assert.Equal(t, "facebook", cfg.Social.Providers[0].ID)
	assert.Equal(t, "assets/apple.svg", cfg.Social.Providers[2].Icon)
}

func TestParseScreenConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseScreenConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *authformerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseScreenConfigMalformedYAML(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "version: \"1.0\"\ntitle: [unclosed\n")

	_, err := ParseScreenConfig(path)
	require.Error(t, err)

	var parseErr *authformerrors.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
	assert.Positive(t, parseErr.Line, "yaml errors carry a line number")
}

func TestParseScreenConfigInvalidField(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: "1.0"
title: Welcome back
theme: neon
`)

	_, err := ParseScreenConfig(path)
	require.Error(t, err)

	var validationErr *authformerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "theme", validationErr.Field)
}
