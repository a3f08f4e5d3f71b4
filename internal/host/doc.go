// Package host describes what the chatsounds plugin needs from the game
// client it runs inside, and provides Local, an in-process client that
// implements it.
//
// The real client owns every thread that calls into the plugin. Chat and key
// handlers run on its event thread, the tick function on its frame thread.
// Handlers receive the client's raw integers; converting and validating them
// is the plugin's job.
//
// Local is used by the terminal simulator and by tests. It keeps subscribers
// in registration order, delivers events synchronously on the caller's
// goroutine, and exposes its scheduled-task tick as a detour.Slot so the
// plugin can hook it exactly as it would hook the real client.
package host
