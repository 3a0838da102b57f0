package mailer

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates the relay service/template ids are missing
var ErrNotConfigured = errors.New("email relay is not configured")

// ErrRejected indicates the relay refused the submission (4xx)
var ErrRejected = errors.New("email relay rejected the message")

// ServerError represents a 5xx error from the relay
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("email relay server error: HTTP %d", e.StatusCode)
}
