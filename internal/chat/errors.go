package chat

import "errors"

// ErrInvalidMsgType is returned when the host reports a message type that
// does not fit its unsigned 32-bit type field.
var ErrInvalidMsgType = errors.New("chat message type out of range")
