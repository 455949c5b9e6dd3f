package config

import (
	"net/url"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	brandforgeerrors "github.com/forgeline/brandforge/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("service_url", func(fl validator.FieldLevel) bool {
			raw := fl.Field().String()
			if raw == "" {
				return true
			}
			parsed, err := url.Parse(raw)
			if err != nil {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return (scheme == "http" || scheme == "https") && parsed.Host != ""
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks the configuration against its declared constraints.
func Validate(cfg *Config) error {
	if cfg == nil {
		return brandforgeerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return brandforgeerrors.NewValidationError(
				strings.ToLower(first.Namespace()),
				"failed "+first.Tag()+" validation",
				err,
			)
		}
		return brandforgeerrors.NewValidationError("config", err.Error(), err)
	}
	return nil
}
