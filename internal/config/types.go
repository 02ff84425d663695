package config

// ScreenConfig describes a signin screen for the demo host application:
// labels, hints, provider set, and feature flags. It is the file-backed
// form of the options surface the component library consumes.
type ScreenConfig struct {
	Version  string         `yaml:"version" validate:"required"`
	Title    string         `yaml:"title" validate:"required,min=1,max=100"`
	Subtitle string         `yaml:"subtitle,omitempty" validate:"omitempty,max=200"`
	Theme    string         `yaml:"theme,omitempty" validate:"omitempty,oneof=default dark"`
	Width    int            `yaml:"width,omitempty" validate:"omitempty,min=24,max=120"`
	Email    FieldConfig    `yaml:"email,omitempty"`
	Password FieldConfig    `yaml:"password,omitempty"`
	Submit   SubmitConfig   `yaml:"submit,omitempty"`
	Remember RememberConfig `yaml:"remember,omitempty"`
	Social   SocialConfig   `yaml:"social,omitempty"`
}

// FieldConfig holds per-field presentation settings.
type FieldConfig struct {
	Placeholder string `yaml:"placeholder,omitempty" validate:"omitempty,max=60"`
}

// SubmitConfig configures the primary button.
type SubmitConfig struct {
	Label string `yaml:"label,omitempty" validate:"omitempty,max=40"`
}

// RememberConfig configures the remember-me row.
type RememberConfig struct {
	Enabled     bool   `yaml:"enabled,omitempty"`
	Label       string `yaml:"label,omitempty" validate:"omitempty,max=40"`
	ForgotLabel string `yaml:"forgot_label,omitempty" validate:"omitempty,max=40"`
}

// SocialConfig configures the social sign-in section.
type SocialConfig struct {
	Enabled        bool             `yaml:"enabled,omitempty"`
	DividerLabel   string           `yaml:"divider_label,omitempty" validate:"omitempty,max=40"`
	ShowAppleOnAll bool             `yaml:"show_apple_on_all,omitempty"`
	Providers      []ProviderConfig `yaml:"providers,omitempty" validate:"omitempty,dive"`
}

// ProviderConfig pairs a provider identifier with its icon asset path.
type ProviderConfig struct {
	ID   string `yaml:"id" validate:"required,provider"`
	Icon string `yaml:"icon" validate:"required"`
}
