package sound

import "strings"

// StopToken is the query that stops all playback instead of playing a sound.
const StopToken = "sh"

// Normalize trims and lowercases a trigger for comparison with StopToken.
func Normalize(trigger string) string {
	return strings.ToLower(strings.TrimSpace(trigger))
}

// IsStop reports whether trigger asks for playback to stop.
func IsStop(trigger string) bool {
	return Normalize(trigger) == StopToken
}
