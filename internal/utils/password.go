package utils

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned by HashPassword for inputs over
// MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// HashPassword returns a bcrypt hash of plain.  A cost outside bcrypt's
// range falls back to bcrypt.DefaultCost.
func HashPassword(plain string, cost int) (string, error) {
	if len(plain) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), clampCost(cost))
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}
	return string(b), nil
}

// VerifyPassword compares a bcrypt hash with a plain password.
func VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// NeedsRehash reports whether hash was produced with a different cost
// than the one currently configured.
func NeedsRehash(hash string, cost int) bool {
	got, err := bcrypt.Cost([]byte(hash))
	return err != nil || got != clampCost(cost)
}

func clampCost(cost int) int {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return bcrypt.DefaultCost
	}
	return cost
}
