package model

import (
	"fmt"
	"time"
)

// DBError is returned when a datastore operation fails.
type DBError struct {
	err error
}

// NewDBError wraps a datastore failure.
func NewDBError(err error) *DBError {
	return &DBError{err: err}
}

func (e *DBError) Error() string { return fmt.Sprintf("db error: %v", e.err) }
func (e *DBError) Unwrap() error { return e.err }

// NotFoundError is returned when a requested entity does not exist.
type NotFoundError struct {
	err error
}

// NewNotFoundError wraps a missing-entity failure.
func NewNotFoundError(err error) *NotFoundError {
	return &NotFoundError{err: err}
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("not found: %v", e.err) }
func (e *NotFoundError) Unwrap() error { return e.err }

// InvalidParamError is returned when request input fails validation.
type InvalidParamError struct {
	err error
}

// NewInvalidParamError wraps a validation failure.
func NewInvalidParamError(err error) *InvalidParamError {
	return &InvalidParamError{err: err}
}

func (e *InvalidParamError) Error() string { return fmt.Sprintf("invalid param: %v", e.err) }
func (e *InvalidParamError) Unwrap() error { return e.err }

// AuthError is returned when the admin key is missing or wrong.
type AuthError struct {
	err error
}

// NewAuthError wraps an authorization failure.
func NewAuthError(err error) *AuthError {
	return &AuthError{err: err}
}

func (e *AuthError) Error() string { return fmt.Sprintf("unauthorized: %v", e.err) }
func (e *AuthError) Unwrap() error { return e.err }

// RateLimitedError means the provider asked us to slow down (HTTP 429).
type RateLimitedError struct {
	RetryAfter time.Duration
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited by provider, retry after %s", e.RetryAfter)
}

// AuthInvalidError means the provider rejected the credential itself (HTTP 403).
type AuthInvalidError struct {
	CredentialName string
}

func (e *AuthInvalidError) Error() string {
	return fmt.Sprintf("credential %q rejected by provider", e.CredentialName)
}

// TransientError covers network failures, timeouts and 5xx responses.
type TransientError struct {
	Status int
	Err    error
}

func (e *TransientError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("transient provider error (status %d): %v", e.Status, e.Err)
	}
	return fmt.Sprintf("transient provider error: %v", e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// ExhaustedRetriesError is raised when the retry policy gave up.
type ExhaustedRetriesError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedRetriesError) Error() string {
	return fmt.Sprintf("failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ExhaustedRetriesError) Unwrap() error { return e.Last }

// NoCredentialAvailableError means every credential in the pool is
// deactivated or over quota. This is a configuration condition, never
// retried.
type NoCredentialAvailableError struct {
	Provider string
}

func (e *NoCredentialAvailableError) Error() string {
	return fmt.Sprintf("no active %s credential available", e.Provider)
}
