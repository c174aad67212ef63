package errorx

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error is the typed error returned by the packages of this module.
type Error struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`

	OriginalError error // Not returned to clients

	stack Callers
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Type.String(), e.Message)
}

// Unwrap exposes the original error to errors.Is / errors.As chains.
func (e *Error) Unwrap() error {
	return e.OriginalError
}

// WithCause attaches the underlying error without changing the rendered message.
func (e *Error) WithCause(cause error) *Error {
	e.OriginalError = cause
	return e
}

// StackTrace returns the call stack captured when the error was created.
func (e *Error) StackTrace() Callers {
	return e.stack
}

// IsError unwraps e down to its cause and reports whether it is a typed
// Error from this module.
func IsError(e error) (*Error, bool) {
	e = errors.Cause(e)
	mE, ok := e.(*Error)
	if !ok {
		return nil, false
	}

	if mE.Type == ErrorTypeUnspecified {
		return nil, false
	}

	return mE, true
}
