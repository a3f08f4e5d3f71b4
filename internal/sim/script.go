package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultScriptDelay separates script lines that give no delay.
const DefaultScriptDelay = time.Second

// ScriptLine is one server message replayed by the simulator.
type ScriptLine struct {
	// After is the wait since the previous line.
	After time.Duration
	// Text is the full message as the server would send it before wrapping.
	Text string
}

// ParseScript reads one message per line. A line may start with "+<duration>"
// to set its delay. Blank lines and lines starting with '#' are skipped.
//
//	+2s &eBob: &fhello there
//	&eBob: &fsh
func ParseScript(r io.Reader) ([]ScriptLine, error) {
	var lines []ScriptLine

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		line := ScriptLine{After: DefaultScriptDelay, Text: text}
		if rest, ok := strings.CutPrefix(text, "+"); ok {
			spec, msg, _ := strings.Cut(rest, " ")
			d, err := time.ParseDuration(spec)
			if err != nil || d < 0 {
				return nil, fmt.Errorf("%w: line %d: bad delay %q", ErrInvalidScript, n, spec)
			}
			line.After = d
			line.Text = strings.TrimSpace(msg)
		}
		if line.Text == "" {
			return nil, fmt.Errorf("%w: line %d: empty message", ErrInvalidScript, n)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

// LoadScript parses the script file at path.
func LoadScript(path string) ([]ScriptLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	return ParseScript(f)
}
