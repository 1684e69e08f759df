package profiles

import "errors"

// ErrNotFound is returned when a user has no stored profile.
var ErrNotFound = errors.New("profile not found")

// ErrInvalidInput is returned for requests missing required fields.
var ErrInvalidInput = errors.New("invalid input")
