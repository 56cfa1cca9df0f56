package seed

import "fmt"

// LoadError represents an error during file I/O or JSON parsing. Path is
// empty when the document did not come from a file.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := "load error: " + e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("load error: %s: %s", e.Path, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
