package sim

import "errors"

var (
	// ErrInvalidScript is returned when a script line cannot be parsed.
	ErrInvalidScript = errors.New("invalid script")

	// ErrNilClient is returned when New is given no client.
	ErrNilClient = errors.New("client is nil")
)
