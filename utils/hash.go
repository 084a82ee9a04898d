package utils

import (
	"errors"

	"github.com/Reactman/wakanda/utils/strutil"

	"golang.org/x/crypto/bcrypt"
)

var ErrBlankPassword = errors.New("password must not be blank")

// HashPassword returns the bcrypt hash of raw. Blank passwords are refused.
func HashPassword(raw string) (string, error) {
	if strutil.IsBlank(raw) {
		return "", ErrBlankPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	return string(b), err
}

// CheckPassword verifies a plaintext password against a stored hash.
func CheckPassword(hash, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw)) == nil
}
