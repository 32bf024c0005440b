// Package service sits between the HTTP handlers and the repositories.
// Most methods pass straight through; the services add season
// canonicalisation, score validation, the popularity overview, event
// publishing and the registration/authentication flow.
package service

import (
	"fmt"
	"math"
)

// ValidationError reports input the service refuses to act on.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// Credential failures.  Both are ValidationErrors; handlers answer them
// with 401.
var (
	ErrInvalidCredentials  = &ValidationError{Field: "credentials", Msg: "invalid username or password"}
	ErrInvalidRefreshToken = &ValidationError{Field: "refresh_token", Msg: "invalid or expired refresh token"}
)

// MaxScore is the largest value the INT score columns hold.
const MaxScore = math.MaxInt32

func validateScore(score int) error {
	if score < 0 {
		return &ValidationError{Field: "score", Msg: "must not be negative"}
	}
	if score > MaxScore {
		return &ValidationError{Field: "score", Msg: fmt.Sprintf("must not exceed %d", MaxScore)}
	}
	return nil
}
