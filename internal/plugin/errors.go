package plugin

import "errors"

// Plugin errors.
var (
	// ErrNilHost is returned when a plugin is created without a host.
	ErrNilHost = errors.New("host is nil")
)
