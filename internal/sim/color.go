package sim

import "github.com/gdamore/tcell/v2"

// ColorCode starts a color change in chat text, followed by a hex digit.
const ColorCode = '&'

var palette = [16]tcell.Color{
	tcell.NewHexColor(0x000000),
	tcell.NewHexColor(0x0000BF),
	tcell.NewHexColor(0x00BF00),
	tcell.NewHexColor(0x00BFBF),
	tcell.NewHexColor(0xBF0000),
	tcell.NewHexColor(0xBF00BF),
	tcell.NewHexColor(0xBFBF00),
	tcell.NewHexColor(0xBFBFBF),
	tcell.NewHexColor(0x404040),
	tcell.NewHexColor(0x4040FF),
	tcell.NewHexColor(0x40FF40),
	tcell.NewHexColor(0x40FFFF),
	tcell.NewHexColor(0xFF4040),
	tcell.NewHexColor(0xFF40FF),
	tcell.NewHexColor(0xFFFF40),
	tcell.NewHexColor(0xFFFFFF),
}

// colorIndex returns the palette index for a color code digit.
func colorIndex(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// StripColors removes color codes from text.
func StripColors(text string) string {
	runes := []rune(text)
	out := runes[:0:0]
	for i := 0; i < len(runes); i++ {
		if runes[i] == ColorCode && i+1 < len(runes) {
			if _, ok := colorIndex(runes[i+1]); ok {
				i++
				continue
			}
		}
		out = append(out, runes[i])
	}
	return string(out)
}
