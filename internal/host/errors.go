package host

import "errors"

// Host errors.
var (
	// ErrCommandExists is returned when a command name is registered twice.
	ErrCommandExists = errors.New("command already registered")

	// ErrInvalidCommand is returned when a command has no name or no function.
	ErrInvalidCommand = errors.New("invalid command")
)
