package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authformerrors "github.com/tessier-labs/authform/pkg/errors"
)

func validScreenConfig() *ScreenConfig {
	return &ScreenConfig{
		Version: "1.0",
		Title:   "Welcome back",
		Social: SocialConfig{
			Enabled: true,
			Providers: []ProviderConfig{
				{ID: "facebook", Icon: "assets/facebook.svg"},
				{ID: "google", Icon: "assets/google.svg"},
			},
		},
	}
}

func TestValidateScreenConfigAccepts(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateScreenConfig(validScreenConfig()))
}

func TestValidateScreenConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateScreenConfig(nil)
	require.Error(t, err)

	var validationErr *authformerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestValidateScreenConfigRequiredFields(t *testing.T) {
	t.Parallel()

	cfg := validScreenConfig()
	cfg.Title = ""

	err := ValidateScreenConfig(cfg)
	require.Error(t, err)

	var validationErr *authformerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "title", validationErr.Field)
}

func TestValidateScreenConfigProviderIdentifier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		ok   bool
	}{
		{"lowercase word", "facebook", true},
		{"with digits and dash", "auth0-v2", true},
		{"with underscore", "my_idp", true},
		{"uppercase rejected", "Facebook", false},
		{"leading digit rejected", "1fb", false},
		{"spaces rejected", "face book", false},
		{"empty rejected", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validScreenConfig()
			cfg.Social.Providers = []ProviderConfig{{ID: tt.id, Icon: "assets/icon.svg"}}

			err := ValidateScreenConfig(cfg)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateScreenConfigDuplicateProvider(t *testing.T) {
	t.Parallel()

	cfg := validScreenConfig()
	cfg.Social.Providers = []ProviderConfig{
		{ID: "google", Icon: "assets/google.svg"},
		{ID: "google", Icon: "assets/google2.svg"},
	}

	err := ValidateScreenConfig(cfg)
	require.Error(t, err)

	var validationErr *authformerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Message, "duplicate provider")
}

func TestValidateScreenConfigSocialEnabledWithoutProviders(t *testing.T) {
	t.Parallel()

	cfg := validScreenConfig()
	cfg.Social.Providers = nil

	err := ValidateScreenConfig(cfg)
	require.Error(t, err)

	var validationErr *authformerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "social.providers", validationErr.Field)
}

func TestValidateScreenConfigSocialDisabledWithoutProviders(t *testing.T) {
	t.Parallel()

	cfg := validScreenConfig()
	cfg.Social = SocialConfig{}

	assert.NoError(t, ValidateScreenConfig(cfg))
}

func TestValidateScreenConfigWidthBounds(t *testing.T) {
	t.Parallel()

	cfg := validScreenConfig()
	cfg.Width = 10

	err := ValidateScreenConfig(cfg)
	require.Error(t, err)

	var validationErr *authformerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "width", validationErr.Field)
}
