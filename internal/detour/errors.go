package detour

import "errors"

// Hook errors.
var (
	// ErrAlreadyInstalled is returned when Install is called on a hook that
	// has already captured a target.
	ErrAlreadyInstalled = errors.New("detour already installed")

	// ErrNotInstalled is returned when Enable or Disable is called before Install.
	ErrNotInstalled = errors.New("detour not installed")

	// ErrNilTarget is returned when the target slot holds no function.
	ErrNilTarget = errors.New("detour target is nil")

	// ErrNilReplacement is returned when Install is given no replacement.
	ErrNilReplacement = errors.New("detour replacement is nil")

	// ErrTargetMismatch is returned when the slot no longer holds the function
	// the hook expects to find there.
	ErrTargetMismatch = errors.New("detour target modified by another writer")
)
