package interaction

import "errors"

var (
	// ErrUnknownResource is returned when a name matches no catalog entry.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrInvalidValue is returned by Set for unsupported Go types.
	ErrInvalidValue = errors.New("invalid value")

	// ErrCursorStalled is returned by ListAll when the device repeats a key.
	ErrCursorStalled = errors.New("list cursor did not advance")
)
