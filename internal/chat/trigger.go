package chat

import "strings"

// TriggerMarker is the colour code that precedes the sender's own text.
const TriggerMarker = "&f"

// ExtractTrigger returns the text after the last TriggerMarker in msg.
// The trigger may be empty; ok is false only when there is no marker.
func ExtractTrigger(msg string) (trigger string, ok bool) {
	pos := strings.LastIndex(msg, TriggerMarker)
	if pos < 0 {
		return "", false
	}
	return msg[pos+len(TriggerMarker):], true
}
