package converter

import (
	"errors"
	"fmt"
)

// ErrNoProjectFiles is wrapped by the usage error returned for a directory
// that holds no project files.
var ErrNoProjectFiles = errors.New("no project files found")

// UsageError reports a target the converter cannot work with. Message is
// the text shown to the user.
type UsageError struct {
	Target  string
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Target, e.Err)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Target)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
