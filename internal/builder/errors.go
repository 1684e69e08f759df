package builder

import "errors"

// ErrProfileNotAvailable is returned when generation is requested for a user
// without a stored profile. A draft without profile data is meaningless.
var ErrProfileNotAvailable = errors.New("user profile not available")

// ErrTemplateNotFound is returned when the requested template id is unknown.
var ErrTemplateNotFound = errors.New("template not found")
