package sound

import "errors"

// Sentinel errors for the sound package.
var (
	// ErrAlreadyRunning is returned when Start is called on a running dispatcher.
	ErrAlreadyRunning = errors.New("dispatcher is already running")

	// ErrNotRunning is returned when Stop is called on a stopped dispatcher.
	ErrNotRunning = errors.New("dispatcher is not running")

	// ErrNilGuard is returned when a dispatcher is created without a guard.
	ErrNilGuard = errors.New("engine guard is nil")

	// ErrInvalidCatalog is returned when a catalog manifest cannot be used.
	ErrInvalidCatalog = errors.New("invalid sound catalog")
)
