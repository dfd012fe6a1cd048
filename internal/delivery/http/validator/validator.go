// Package validator wires go-playground/validator into Echo's request
// validation hook and registers application-specific rules.
package validator

import (
	"unicode"

	"parfum/config"
	domainerrors "parfum/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// defaults mirror the documented password policy when configuration
// leaves the block out.
var defaultPasswordStrength = config.PasswordStrengthConfig{
	MinLength:        8,
	RequireUppercase: true,
	RequireLowercase: true,
	RequireNumbers:   true,
	RequireSpecial:   true,
}

// CustomValidator wraps the go-playground validator for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the `password` rule bound to the
// configured strength policy.
func New(cfg *config.Config) *CustomValidator {
	strength := defaultPasswordStrength
	if cfg != nil && cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	validate := validator.New()
	// Registration only fails for a blank tag name.
	_ = validate.RegisterValidation("password", passwordRule(strength))

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures surface as the
// application's validation error so the error handler renders a 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

// passwordRule enforces the password strength policy with a single pass
// over the runes. An empty value passes; `required` handles presence.
func passwordRule(strength config.PasswordStrengthConfig) validator.Func {
	return func(fl validator.FieldLevel) bool {
		password := fl.Field().String()
		if password == "" {
			return true
		}

		var hasUpper, hasLower, hasNumber, hasSpecial bool
		length := 0
		for _, r := range password {
			length++
			switch {
			case unicode.IsUpper(r):
				hasUpper = true
			case unicode.IsLower(r):
				hasLower = true
			case unicode.IsDigit(r):
				hasNumber = true
			case unicode.IsPunct(r) || unicode.IsSymbol(r):
				hasSpecial = true
			}
		}

		if length < strength.MinLength {
			return false
		}
		if strength.RequireUppercase && !hasUpper {
			return false
		}
		if strength.RequireLowercase && !hasLower {
			return false
		}
		if strength.RequireNumbers && !hasNumber {
			return false
		}
		if strength.RequireSpecial && !hasSpecial {
			return false
		}

		return true
	}
}
