package editor

import "fmt"

// ImageError reports a photo that could not be attached
type ImageError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ImageError) Error() string {
	prefix := "image error"
	if e.Path != "" {
		prefix = fmt.Sprintf("image error: %s", e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *ImageError) Unwrap() error {
	return e.Cause
}
