package export

import (
	"regexp"
	"strings"
)

// DefaultBaseName is used when the resume has no name
const DefaultBaseName = "cosmic-resume"

var whitespace = regexp.MustCompile(`\s+`)

// FileName derives the suggested file name from the person's name:
// whitespace runs become underscores and the result is lower-cased.
func FileName(name, ext string) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = DefaultBaseName
	}
	base = strings.ToLower(whitespace.ReplaceAllString(base, "_"))
	// Keep the name usable as a single path element
	base = strings.NewReplacer("/", "_", "\\", "_").Replace(base)
	if ext == "" {
		return base
	}
	return base + "." + strings.TrimPrefix(ext, ".")
}
