package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moamenhredeen/contentapi/internal/models"
)

// ValidationError is raised before any network call when an operation
// cannot be resolved from the supplied parameters
type ValidationError struct {
	Operation string
	Message   string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// UnknownOperation reports an operation id that is not registered
func UnknownOperation(id string) *ValidationError {
	return &ValidationError{
		Operation: id,
		Message:   "Unknown operation: " + id,
	}
}

// MissingParameter reports that none of the identifying parameters were supplied
func MissingParameter(operation string, params ...string) *ValidationError {
	what := strings.Join(params, ", ")
	if len(params) > 1 {
		what = "one of " + what
	}
	return &ValidationError{
		Operation: operation,
		Message:   fmt.Sprintf("missing required parameter for operation %s: %s", operation, what),
	}
}

// TransportError wraps a failure that prevented the call from completing.
// Its message is prefixed with the label of the adapter that issued the call.
type TransportError struct {
	Label string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Label, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorKind is the outcome class of a call
type ErrorKind int

const (
	// KindNone is a successful call
	KindNone ErrorKind = iota
	// KindValidation is a pre-flight failure, no request was sent
	KindValidation
	// KindBackendRejection is a non-2xx response returned as an envelope
	KindBackendRejection
	// KindTransport is a call that could not complete
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "ok"
	case KindValidation:
		return "validation"
	case KindBackendRejection:
		return "backend_rejection"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Classify maps the result of a call to its outcome class
func Classify(env *models.Envelope, err error) ErrorKind {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return KindValidation
	case err != nil:
		return KindTransport
	case env != nil && !env.Success:
		return KindBackendRejection
	default:
		return KindNone
	}
}
