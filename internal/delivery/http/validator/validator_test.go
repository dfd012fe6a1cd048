package validator

import (
	"testing"

	"parfum/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,password"`
}

func TestCustomValidator_PasswordRule(t *testing.T) {
	cv := New(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "valid password", password: "Str0ng!Pass", wantErr: false},
		{name: "too short", password: "S7!a", wantErr: true},
		{name: "missing uppercase", password: "str0ng!pass", wantErr: true},
		{name: "missing lowercase", password: "STR0NG!PASS", wantErr: true},
		{name: "missing digit", password: "Strong!Pass", wantErr: true},
		{name: "missing symbol", password: "Str0ngPass", wantErr: true},
		{name: "exactly eight chars", password: "Str0ng!P", wantErr: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(&registerPayload{
				Email:    "admin@example.com",
				Password: tc.password,
			})
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomValidator_EmailRule(t *testing.T) {
	cv := New(nil)

	err := cv.Validate(&registerPayload{
		Email:    "not-an-email",
		Password: "Str0ng!Pass",
	})
	require.Error(t, err)
}

func TestCustomValidator_RelaxedPolicy(t *testing.T) {
	cv := New(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength: 4,
		},
	})

	assert.NoError(t, cv.Validate(&registerPayload{
		Email:    "admin@example.com",
		Password: "abcd",
	}))
}
