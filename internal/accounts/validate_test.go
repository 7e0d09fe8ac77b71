package accounts

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() SignupInput {
	return SignupInput{
		Name:            "Ada",
		Email:           "ada@example.com",
		Password:        "Str0ng!Pass",
		ConfirmPassword: "Str0ng!Pass",
	}
}

func TestValidateSignup(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name   string
		mutate func(*SignupInput)
		want   error
	}{
		{"valid", func(in *SignupInput) {}, nil},
		{"missing name", func(in *SignupInput) { in.Name = "" }, &MissingFieldError{Field: "name"}},
		{"missing email", func(in *SignupInput) { in.Email = "" }, &MissingFieldError{Field: "email"}},
		{"missing password", func(in *SignupInput) { in.Password = "" }, &MissingFieldError{Field: "password"}},
		{"missing confirmation", func(in *SignupInput) { in.ConfirmPassword = "" }, &MissingFieldError{Field: "confirmPassword"}},
		{"bad email", func(in *SignupInput) { in.Email = "not-an-email" }, ErrInvalidEmail},
		{"mismatch", func(in *SignupInput) { in.ConfirmPassword = "Other1!Pass" }, ErrPasswordMismatch},
		{"weak", func(in *SignupInput) {
			in.Password = "weakpass"
			in.ConfirmPassword = "weakpass"
		}, ErrWeakPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			err := validateSignup(v, policy, in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			var wantMissing *MissingFieldError
			if errors.As(tt.want, &wantMissing) {
				var missing *MissingFieldError
				require.ErrorAs(t, err, &missing)
				assert.Equal(t, wantMissing.Field, missing.Field)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateSignupCheckOrder(t *testing.T) {
	v := validator.New(validator.WithRequiredStructEnabled())
	policy := DefaultPasswordPolicy()

	// Presence beats format.
	in := validInput()
	in.Email = ""
	in.Password = "weak"
	var missing *MissingFieldError
	assert.ErrorAs(t, validateSignup(v, policy, in), &missing)

	// Format beats mismatch.
	in = validInput()
	in.Email = "nope"
	in.ConfirmPassword = "different"
	assert.ErrorIs(t, validateSignup(v, policy, in), ErrInvalidEmail)

	// Mismatch beats strength.
	in = validInput()
	in.Password = "weak"
	in.ConfirmPassword = "also-weak"
	assert.ErrorIs(t, validateSignup(v, policy, in), ErrPasswordMismatch)
}

func TestPasswordPolicyCheck(t *testing.T) {
	policy := DefaultPasswordPolicy()

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"satisfies all classes", "Str0ng!Pass", true},
		{"too short", "S0r!t", false},
		{"no upper", "str0ng!pass", false},
		{"no lower", "STR0NG!PASS", false},
		{"no digit", "Strong!Pass", false},
		{"no symbol", "Str0ngPass1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Check(tt.password))
		})
	}
}

func TestPasswordPolicyLengthOnly(t *testing.T) {
	policy := PasswordPolicy{MinLength: 6}

	assert.True(t, policy.Check("abcdef"))
	assert.False(t, policy.Check("abcde"))
}

func TestPasswordPolicyValidate(t *testing.T) {
	assert.NoError(t, DefaultPasswordPolicy().Validate())
	assert.Error(t, PasswordPolicy{}.Validate())
	assert.Error(t, PasswordPolicy{MinLength: -1}.Validate())
}
