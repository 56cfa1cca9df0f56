// Package seed loads a resume document from a JSON file so a session can
// start pre-filled. Documents are only read, never written back.
package seed

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/IMPERIALX7/cosmic-resume/internal/editor"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// LoadDocument loads and normalizes a document from a JSON file
func LoadDocument(path string) (types.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.Document{}, &LoadError{
			Path:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	doc, err := ParseDocument(content)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}
		return types.Document{}, err
	}
	return doc, nil
}

// ParseDocument decodes and normalizes a JSON document
func ParseDocument(content []byte) (types.Document, error) {
	doc := types.NewDocument()
	if err := json.Unmarshal(content, &doc); err != nil {
		return types.Document{}, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}
	Normalize(&doc, editor.NewID)
	return doc, nil
}
