package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	authformerrors "github.com/tessier-labs/authform/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	// The provider set is open; identifiers only need to be well-formed
	// lowercase tokens. Unknown identifiers render with neutral styling.
	providerPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
			return providerPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateScreenConfig performs schema and cross-field validation on the
// screen configuration.
func ValidateScreenConfig(cfg *ScreenConfig) error {
	if cfg == nil {
		return authformerrors.NewValidationError("screen", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(cfg.Social.Providers))
	for i, provider := range cfg.Social.Providers {
		id := strings.ToLower(provider.ID)
		if _, exists := seen[id]; exists {
			field := fmt.Sprintf("social.providers[%d].id", i)
			return authformerrors.NewValidationError(field, fmt.Sprintf("duplicate provider %q", id), nil)
		}
		seen[id] = struct{}{}
	}

	if cfg.Social.Enabled && len(cfg.Social.Providers) == 0 {
		return authformerrors.NewValidationError("social.providers", "social section enabled without providers", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrors); ok && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		field := strings.TrimPrefix(fe.Namespace(), "ScreenConfig.")
		message := fmt.Sprintf("failed %q constraint", fe.Tag())
		return authformerrors.NewValidationError(strings.ToLower(field), message, err)
	}
	return authformerrors.NewValidationError("screen", err.Error(), err)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = fieldErrors
	return true
}
