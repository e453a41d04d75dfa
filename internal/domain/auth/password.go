package auth

import (
	"crypto/rand"
	"encoding/base64"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

func PasswordRequirements(password string) error {
	if len(password) < 8 {
		return appErrors.NewValidationError("password", "must be at least 8 characters")
	}
	hasUpper, _ := regexp.MatchString(`[A-Z]`, password)
	if !hasUpper {
		return appErrors.NewValidationError("password", "must contain at least one uppercase letter")
	}
	hasDigit, _ := regexp.MatchString(`[0-9]`, password)
	if !hasDigit {
		return appErrors.NewValidationError("password", "must contain at least one digit")
	}
	return nil
}

func PasswordValidate(inputPassword string, storedPassword string) error {
	if inputPassword == "" {
		return appErrors.NewValidationError("password", "must be provided")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedPassword), []byte(inputPassword)); err != nil {
		return appErrors.ErrInvalidCredentials
	}
	return nil
}

// generateSecurePassword produces a random placeholder password for accounts
// created through Google sign-in; those users never log in with it.
func generateSecurePassword() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", appErrors.ErrInternalServer.WithError(err)
	}
	return "G!" + base64.RawURLEncoding.EncodeToString(raw), nil
}
