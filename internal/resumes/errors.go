package resumes

import "errors"

// ErrNotFound is returned when no resume exists for the given keys.
var ErrNotFound = errors.New("resume not found")
