package editor

import (
	"fmt"

	"github.com/IMPERIALX7/cosmic-resume/internal/session"
	"github.com/IMPERIALX7/cosmic-resume/internal/types"
)

// seqIDs returns an IDFunc producing prefix-1, prefix-2, ...
func seqIDs() IDFunc {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestSession() *session.Session {
	return session.New(types.NewDocument())
}
