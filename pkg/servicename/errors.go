package servicename

import (
	"errors"
)

var (
	// ErrInvalidFormat is returned when a foreign name cannot be rendered to
	// its string form.
	ErrInvalidFormat = errors.New("invalid name format")
	// ErrIndexOutOfRange is returned when a name has too few components for
	// the position requested.
	ErrIndexOutOfRange = errors.New("index out of range")
)
