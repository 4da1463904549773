package tex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Command is one control sequence found in an environment body.
type Command struct {
	// Name is the maximal run of letters after the backslash. It may be
	// empty for control symbols such as \[ or a trailing backslash.
	Name string
	// Starred reports whether the name was followed by a single *.
	Starred bool
	// Arg holds the text inside the bracketed argument, if present.
	// Nested bracket pairs are kept intact.
	Arg string
	// HasArg reports whether a bracketed argument was consumed.
	HasArg bool
}

// Scanner yields the commands of one environment body in source order.
// Each Scanner owns its cursor; re-scanning a body means creating a new
// Scanner, so concurrent scans never share state.
type Scanner struct {
	body string
	pos  int
}

// NewScanner returns a scanner positioned at the start of body.
func NewScanner(body string) *Scanner {
	return &Scanner{body: body}
}

// Next returns the next command, or ok=false when the body is exhausted.
// Plain prose between commands is skipped.
func (s *Scanner) Next() (Command, bool) {
	cmd, next, ok := nextCommand(s.body, s.pos)
	s.pos = next
	return cmd, ok
}

// Commands scans an entire body and returns its commands.
func Commands(body string) []Command {
	var cmds []Command
	scanner := NewScanner(body)
	for {
		cmd, ok := scanner.Next()
		if !ok {
			return cmds
		}
		cmds = append(cmds, cmd)
	}
}

// nextCommand is a pure scan step from (body, pos) to (command, next, ok).
func nextCommand(body string, pos int) (Command, int, bool) {
	start := strings.IndexByte(body[pos:], '\\')
	if start == -1 {
		return Command{}, len(body), false
	}
	i := pos + start

	j := i + 1
	for j < len(body) {
		r, size := utf8.DecodeRuneInString(body[j:])
		if !unicode.IsLetter(r) {
			break
		}
		j += size
	}
	cmd := Command{Name: body[i+1 : j]}

	if j < len(body) && body[j] == '*' {
		cmd.Starred = true
		j++
	}

	k := j
	for k < len(body) {
		r, size := utf8.DecodeRuneInString(body[k:])
		if !unicode.IsSpace(r) {
			break
		}
		k += size
	}

	if k < len(body) && body[k] == '[' {
		argStart := k + 1
		depth := 0
		closed := false
		for k < len(body) {
			switch body[k] {
			case '[':
				depth++
			case ']':
				depth--
				if depth == 0 {
					closed = true
				}
			}
			k++
			if closed {
				break
			}
		}
		cmd.HasArg = true
		if closed {
			cmd.Arg = body[argStart : k-1]
		} else {
			cmd.Arg = body[argStart:]
		}
		return cmd, k, true
	}

	return cmd, k, true
}
