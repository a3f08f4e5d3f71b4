// Package plugin installs chatsounds into a running game client and removes
// it again.
//
// Activate subscribes to chat and key events, loads the command and option
// collaborators, hooks the client's scheduled-task tick, and starts the sound
// dispatcher. It does this once per Plugin; later calls, concurrent or not,
// return after the first has finished and change nothing.
//
// Deactivate undoes what Activate did and may be called any number of times,
// with or without a prior Activate. Event handlers are only removed if they
// were registered, and the tick hook is only disabled if it was installed.
//
// Inconsistent hook state is not recoverable. If the tick slot has been
// rewritten behind the hook's back, or the client sends a key code or message
// type its own unsigned fields could not hold, the Plugin calls its abort
// function, which by default logs at fatal level and exits the process.
// Message types and keys that are merely unknown are ignored.
//
// Chat flows through the plugin like this:
//
//	chat line ─▶ Reassembler ─▶ ExtractTrigger ─▶ Dispatcher.Submit ─▶ worker ─▶ engine
//
// and every frame:
//
//	tick ─▶ original client tick ─▶ printer flush
package plugin
