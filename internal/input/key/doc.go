// Package key defines the host's keyboard key codes.
//
// Codes follow the host's own numbering, so a raw integer from a key event
// converts directly. FromRaw rejects anything outside [0, Count): such a value
// means the host's key table and this one no longer agree.
package key
