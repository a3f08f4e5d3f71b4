package plugin

// State represents the lifecycle state of a plugin.
type State int

// Plugin states.
const (
	// StateInactive - Activate has not run.
	StateInactive State = iota

	// StateActive - Hooks are installed and events are being handled.
	StateActive

	// StateDeactivated - Deactivate has run after Activate. A Plugin never
	// leaves this state.
	StateDeactivated
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateInactive:
		return "inactive"
	case StateActive:
		return "active"
	case StateDeactivated:
		return "deactivated"
	default:
		return "unknown"
	}
}
