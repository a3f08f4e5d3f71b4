package chat

import (
	"fmt"
	"math"
)

// MsgType is the host's classification of a chat line.
type MsgType int

// Host message classifications. Only MsgNormal carries player chat.
const (
	MsgNormal            MsgType = 0
	MsgStatus1           MsgType = 1
	MsgStatus2           MsgType = 2
	MsgStatus3           MsgType = 3
	MsgBottomRight1      MsgType = 11
	MsgBottomRight2      MsgType = 12
	MsgBottomRight3      MsgType = 13
	MsgAnnouncement      MsgType = 100
	MsgBigAnnouncement   MsgType = 101
	MsgSmallAnnouncement MsgType = 102
	MsgClientStatus1     MsgType = 256
	MsgClientStatus2     MsgType = 257
	MsgExtraStatus1      MsgType = 360
	MsgExtraStatus2      MsgType = 361
)

var msgTypeNames = map[MsgType]string{
	MsgNormal:            "normal",
	MsgStatus1:           "status1",
	MsgStatus2:           "status2",
	MsgStatus3:           "status3",
	MsgBottomRight1:      "bottomright1",
	MsgBottomRight2:      "bottomright2",
	MsgBottomRight3:      "bottomright3",
	MsgAnnouncement:      "announcement",
	MsgBigAnnouncement:   "bigannouncement",
	MsgSmallAnnouncement: "smallannouncement",
	MsgClientStatus1:     "clientstatus1",
	MsgClientStatus2:     "clientstatus2",
	MsgExtraStatus1:      "extrastatus1",
	MsgExtraStatus2:      "extrastatus2",
}

// ParseMsgType converts a raw host value into a MsgType. Servers may send
// types this package has no name for; those are valid and simply not
// MsgNormal. Only values the host's unsigned 32-bit field cannot hold are
// rejected.
func ParseMsgType(raw int) (MsgType, error) {
	if raw < 0 || uint64(raw) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMsgType, raw)
	}
	return MsgType(raw), nil
}

// String returns the lowercase name of the message type.
func (t MsgType) String() string {
	if name, ok := msgTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
