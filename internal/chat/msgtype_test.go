package chat

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMsgType(t *testing.T) {
	mt, err := ParseMsgType(0)
	require.NoError(t, err)
	assert.Equal(t, MsgNormal, mt)
	assert.Equal(t, "normal", mt.String())

	mt, err = ParseMsgType(101)
	require.NoError(t, err)
	assert.Equal(t, MsgBigAnnouncement, mt)
}

func TestParseMsgType_UnnamedTypesAreNotNormal(t *testing.T) {
	for _, raw := range []int{4, 99, 255, 1000} {
		mt, err := ParseMsgType(raw)
		require.NoError(t, err, "raw=%d", raw)
		assert.Equal(t, MsgType(raw), mt)
		assert.NotEqual(t, MsgNormal, mt)
		assert.Equal(t, "unknown", mt.String())
	}
}

func TestParseMsgType_OutOfRange(t *testing.T) {
	bad := []int{-1, math.MinInt32}
	if strconv.IntSize == 64 {
		tooBig := int64(math.MaxUint32) + 1
		bad = append(bad, int(tooBig))
	}
	for _, raw := range bad {
		_, err := ParseMsgType(raw)
		assert.ErrorIs(t, err, ErrInvalidMsgType, "raw=%d", raw)
	}
}
