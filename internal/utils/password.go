package utils

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const passwordSpecialChars = `!@#$%^&*()_+-={}[]|\:";'<>?,./`

var (
	ErrPasswordTooShort    = errors.New("password is too short, minimum 7 characters")
	ErrPasswordTooLong     = errors.New("password is too long, maximum 64 characters")
	ErrPasswordNoMixedCase = errors.New("password must contain lower and upper case letters")
	ErrPasswordNoDigit     = errors.New("password must contain at least one digit")
	ErrPasswordNoSpecial   = errors.New("password must contain a special character " + passwordSpecialChars)
)

// ValidatePassword enforces the account password policy: 7..64 characters,
// mixed case, at least one digit and one special character.
func ValidatePassword(password string) error {
	if len(password) < 7 {
		return ErrPasswordTooShort
	}
	if len(password) > 64 {
		return ErrPasswordTooLong
	}

	var hasLower, hasUpper, hasDigit bool
	for _, char := range password {
		switch {
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper {
		return ErrPasswordNoMixedCase
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	if !strings.ContainsAny(password, passwordSpecialChars) {
		return ErrPasswordNoSpecial
	}
	return nil
}

func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
