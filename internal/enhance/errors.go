package enhance

import (
	"errors"
	"fmt"
	"strings"
)

// Refusals returned when an enhancement cannot start. None of them change
// the document.
var (
	// ErrBusy means another enhancement is still pending
	ErrBusy = errors.New("an enhancement is already running")
	// ErrEmptySource means the text to enhance is blank
	ErrEmptySource = errors.New("nothing to enhance")
	// ErrUnknownTarget means the experience entry does not exist
	ErrUnknownTarget = errors.New("enhancement target not found")
	// ErrNoOptions means the summary modal has no option to select
	ErrNoOptions = errors.New("no summary option to select")
)

// SchemaError reports a summary-options response that does not match the
// expected JSON shape
type SchemaError struct {
	Errors []FieldError
	Cause  error
}

// FieldError is a single schema violation
type FieldError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed summary options: %v", e.Cause)
	}
	var sb strings.Builder
	sb.WriteString("malformed summary options:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

func (e *SchemaError) Unwrap() error {
	return e.Cause
}
