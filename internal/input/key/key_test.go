package key

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRaw(t *testing.T) {
	c, err := FromRaw(int(Tab))
	require.NoError(t, err)
	assert.Equal(t, Tab, c)

	c, err = FromRaw(0)
	require.NoError(t, err)
	assert.Equal(t, None, c)

	// Past the table: extra mouse buttons and keys newer than this table.
	for _, raw := range []int{int(Count), 140, 1 << 20} {
		c, err := FromRaw(raw)
		require.NoError(t, err, "raw=%d", raw)
		assert.Equal(t, Code(raw), c)
		assert.False(t, c.Valid())
	}

	bad := []int{-1, -1 << 20}
	if strconv.IntSize == 64 {
		tooBig := int64(math.MaxUint32) + 1
		bad = append(bad, int(tooBig))
	}
	for _, raw := range bad {
		_, err := FromRaw(raw)
		assert.ErrorIs(t, err, ErrOutOfRange, "raw=%d", raw)
	}
}

func TestRuneFromRaw(t *testing.T) {
	r, err := RuneFromRaw('a')
	require.NoError(t, err)
	assert.Equal(t, 'a', r)

	r, err = RuneFromRaw(0x1F50A)
	require.NoError(t, err)
	assert.Equal(t, '🔊', r)

	for _, raw := range []int{-1, 0xD800, 0x110000} {
		_, err := RuneFromRaw(raw)
		assert.ErrorIs(t, err, ErrInvalidRune, "raw=%d", raw)
	}
}

func TestCode_String(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{None, "None"},
		{F1, "F1"},
		{F24, "F24"},
		{Num0, "0"},
		{Num9, "9"},
		{A, "A"},
		{Z, "Z"},
		{KP5, "KP5"},
		{Tab, "Tab"},
		{KPEnter, "KPEnter"},
		{Count, "Key(" + strconv.Itoa(int(Count)) + ")"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.String())
	}
}

func TestCode_Classes(t *testing.T) {
	assert.True(t, T.IsLetter())
	assert.False(t, Tab.IsLetter())
	assert.True(t, Num3.IsDigit())
	assert.True(t, F12.IsFunction())
	assert.True(t, LCtrl.IsModifier())
	assert.False(t, Count.Valid())
	assert.True(t, KPEnter.Valid())
}
