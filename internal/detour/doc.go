// Package detour redirects a host-owned function pointer to a replacement
// while keeping the original callable for pass-through.
//
// A Hook moves through a fixed set of states:
//
//	Uninstalled → Installed → Enabled ⇄ Disabled
//
// Install captures the function currently stored in the target Slot. Enable
// swaps the replacement into the slot and Disable restores the original.
// Repeating Enable or Disable in the state it already produces is a no-op.
// Every other transition returns an error, as does finding the slot holding
// something other than what the hook last stored there. Callers are expected
// to treat those errors as fatal: continuing would risk calling through a
// pointer nobody owns anymore.
//
// A Hook can be installed at most once.
package detour
