package tjp

import (
	"errors"
	"fmt"
	"strings"

	uuid "github.com/nu7hatch/gouuid"
)

// ErrBadNoteID is returned (wrapped) when an id does not look like a Joplin id.
var ErrBadNoteID = errors.New("not a 32 hex digit id")

// NewNoteID generates an id for a note to be created. Joplin ids are UUIDs written as 32 lowercase
// hexadecimal digits, without dashes. Choosing the id on the client side means the new todo can be
// shown (with its short id) before the create call returns.
func NewNoteID() (string, error) {
	u, err := uuid.NewV4()
	if err != nil {
		return "", fmt.Errorf("new note id: %w", err)
	}
	return strings.ReplaceAll(u.String(), "-", ""), nil
}

func isNoteID(s string) bool {
	if len(s) != 32 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return true
}
