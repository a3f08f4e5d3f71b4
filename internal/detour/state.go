package detour

// State represents the lifecycle state of a hook.
type State int

// Hook states.
const (
	// StateUninstalled - No target has been captured.
	StateUninstalled State = iota

	// StateInstalled - Original captured, replacement not yet live.
	StateInstalled

	// StateEnabled - The slot points at the replacement.
	StateEnabled

	// StateDisabled - The slot points at the original again.
	StateDisabled
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateUninstalled:
		return "uninstalled"
	case StateInstalled:
		return "installed"
	case StateEnabled:
		return "enabled"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// IsInstalled returns true once a target has been captured.
func (s State) IsInstalled() bool {
	return s != StateUninstalled
}
