package auth

import (
	"errors"
	"fmt"

	domerr "github.com/opst/aptsales/pkg/domain/errors"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns bcrypt hash of password.
//
// Passwords longer than 72 bytes are rejected with an error wrapping ErrInvalid.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %s", domerr.ErrInvalid, err)
	} else if err != nil {
		return "", err
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches the bcrypt hash.
func VerifyPassword(hashed string, password string) bool {
	if hashed == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
