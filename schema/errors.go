package schema

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is against any error produced by the
// loading and scoring path.
var (
	// ErrLoad: classifier or reference dataset missing or unreadable
	ErrLoad = errors.New("load error")
	// ErrData: reference dataset malformed
	ErrData = errors.New("data error")
	// ErrValidation: a feature vector field is outside of its domain
	ErrValidation = errors.New("validation error")
	// ErrModel: the classifier produced an unusable output
	ErrModel = errors.New("model error")
)

// Error wraps a failure with its kind and the operation that raised it
type Error struct {
	Kind error
	Op   string
	Err  error
}

// NewError returns an Error of the given kind
func NewError(kind error, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf returns an Error of the given kind with a formatted cause
func Errorf(kind error, op string, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}
