// Package sound matches chat triggers against an audio engine and plays them
// in the background.
//
// The engine lives behind a Guard, a mutex-protected slot that may be empty.
// Every engine call goes through Guard.With, so calls from different
// goroutines never overlap, and an empty guard turns every call into a no-op.
//
// Dispatcher is the background half: Submit queues a trigger without
// blocking and a fixed pool of workers resolves each one:
//
//	trigger → Normalize → StopToken? → StopAll
//	                    → Find(trimmed trigger) → pick one at random → Play
//
// Nothing is reported back to the submitter. An empty guard, an empty match
// set, or a full queue all end silently.
//
// Catalog is a small Engine backed by a YAML manifest of named sound files.
package sound
