package templates

import "errors"

// ErrNotFound is returned when no template exists with the given id.
var ErrNotFound = errors.New("template not found")
