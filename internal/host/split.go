package host

import (
	"strings"

	"github.com/dshills/chatsounds/internal/chat"
)

// ContinuationPrefix starts each extra line the server produces when it
// wraps a long message.
const ContinuationPrefix = chat.ContinuationPrefix

// LineWidth is the number of characters the server sends per chat line.
const LineWidth = 64

// SplitServerLine wraps msg the way the game server does: at the last space
// that fits, trimming spaces at the break, with every extra line starting
// with ContinuationPrefix.
func SplitServerLine(msg string, width int) []string {
	if width <= len(ContinuationPrefix) {
		width = LineWidth
	}

	runes := []rune(msg)
	if len(runes) <= width {
		return []string{msg}
	}

	var lines []string
	prefix := ""
	for {
		budget := width - len([]rune(prefix))
		if len(runes) <= budget {
			lines = append(lines, prefix+string(runes))
			return lines
		}

		cut := budget
		for i := budget; i > 0; i-- {
			if runes[i] == ' ' {
				cut = i
				break
			}
		}

		head := strings.TrimRight(string(runes[:cut]), " ")
		lines = append(lines, prefix+head)
		runes = []rune(strings.TrimLeft(string(runes[cut:]), " "))
		if len(runes) == 0 {
			return lines
		}
		prefix = ContinuationPrefix
	}
}
