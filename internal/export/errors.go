package export

import (
	"errors"
	"fmt"
)

// ErrBusy is returned when an export is requested while another is running
var ErrBusy = errors.New("an export is already running")

// ExportError represents a failed export. The document is never modified
// by an export, failed or not.
type ExportError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *ExportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("export failed (%s): %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("export failed (%s): %s", e.Stage, e.Message)
}

func (e *ExportError) Unwrap() error {
	return e.Cause
}
