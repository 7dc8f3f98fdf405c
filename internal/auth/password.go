package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong username or password.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Operator is the single account allowed to change items. An empty
// PasswordHash disables login checks altogether.
type Operator struct {
	Username     string
	PasswordHash string
}

// Enabled reports whether write access requires a login.
func (o Operator) Enabled() bool {
	return o.PasswordHash != ""
}

// Authenticate checks a username and password against the operator.
func (o Operator) Authenticate(username, password string) error {
	if subtle.ConstantTimeCompare([]byte(username), []byte(o.Username)) != 1 {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for Operator.PasswordHash.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}
