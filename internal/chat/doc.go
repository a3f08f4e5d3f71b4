// Package chat turns the host's raw chat lines into logical messages and
// pulls the sound trigger out of them.
//
// The game server wraps long messages onto extra lines that start with
// ContinuationPrefix. Reassembler glues each of those back onto the last
// top-level line it saw. ExtractTrigger then returns whatever follows the
// final colour marker, which is the text the sender actually typed.
package chat
