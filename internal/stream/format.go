package stream

import (
	"bytes"
	"strings"
	"time"
)

// TimestampLayout renders local wall-clock time as YYYY-MM-DD/HH:MM:SS.
const TimestampLayout = "2006-01-02/15:04:05"

// IndentWidth is the width of the "[YYYY-MM-DD/HH:MM:SS] " column, so
// continuation lines line up with the first line's prefix.
const IndentWidth = len("[") + len(TimestampLayout) + len("] ")

var indent = strings.Repeat(" ", IndentWidth)

// Format renders payload as decorated lines. The payload is split on '\n';
// a trailing partial line is kept and a single trailing '\n' does not add
// an empty line. The postfix is appended once, without a terminator.
func Format(ts time.Time, prefix, postfix string, payload []byte) []byte {
	lines := splitLines(payload)

	var out bytes.Buffer
	out.Grow(len(payload) + len(lines)*(IndentWidth+len(prefix)+1) + len(postfix))

	for i, line := range lines {
		if i == 0 {
			out.WriteByte('[')
			out.WriteString(ts.Local().Format(TimestampLayout))
			out.WriteString("] ")
		} else {
			out.WriteString(indent)
		}
		out.WriteString(prefix)
		out.Write(line)
		out.WriteByte('\n')
	}
	out.WriteString(postfix)

	return out.Bytes()
}

// splitLines always returns at least one line.
func splitLines(payload []byte) [][]byte {
	lines := bytes.Split(payload, []byte{'\n'})
	if n := len(lines); n > 1 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}
