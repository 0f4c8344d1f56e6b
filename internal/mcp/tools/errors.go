package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/usestring/boredq/pkg/client"
)

// Error codes for MCP tool responses.
const (
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeRequestFailed = "API_REQUEST_FAILED"
	ErrCodeAPIError      = "API_ERROR"
	ErrCodeTimeout       = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapQueryError converts a client error to a coded error. The message is
// the client's own user-facing text.
func WrapQueryError(err error) error {
	if err == nil {
		return nil
	}

	coded := &CodedError{Code: ErrCodeRequestFailed, Message: err.Error(), Cause: err}

	var (
		vErr   *client.ValidationError
		apiErr *client.APIError
		netErr net.Error
	)
	switch {
	case errors.As(err, &vErr):
		coded.Code = ErrCodeInvalidInput
	case errors.As(err, &apiErr):
		coded.Code = ErrCodeAPIError
	case errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr) && netErr.Timeout():
		coded.Code = ErrCodeTimeout
	}

	slog.Warn("query failed",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}
