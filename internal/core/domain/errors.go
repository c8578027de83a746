package domain

import "errors"

// Sentinel errors let the transport layer map failures to status codes
// without string matching. Login flattens "no such user" and "wrong
// password" into ErrInvalidCredentials to prevent user enumeration.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrRefreshNotFound    = errors.New("refresh token not found or expired")
	ErrInternal           = errors.New("internal server error")
)

// ValidationError carries a user-facing message for malformed input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
