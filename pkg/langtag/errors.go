package langtag

import "errors"

// ErrInvalidTag is returned when a tag cannot be parsed.
var ErrInvalidTag = errors.New("langtag: invalid language tag")
