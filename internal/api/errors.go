package api

import (
	"errors"
	"fmt"
)

// ErrInvalidCredentials indicates the login endpoint rejected the username/password
var ErrInvalidCredentials = errors.New("invalid username or password")

// ErrNotFound indicates the requested user or comment does not exist remotely
var ErrNotFound = errors.New("resource not found")

// ServerError represents a 5xx error from the library API
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("library API server error: HTTP %d", e.StatusCode)
}
