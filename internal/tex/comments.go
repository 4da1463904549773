package tex

import "strings"

// StripComments removes every unescaped % and the rest of its line.
// A % preceded by a backslash (\%) is a literal percent sign and is kept.
func StripComments(text string) string {
	var builder strings.Builder
	builder.Grow(len(text))
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '%' && (i == 0 || text[i-1] != '\\') {
			for i+1 < len(text) && text[i+1] != '\n' {
				i++
			}
			continue
		}
		builder.WriteByte(ch)
	}
	return builder.String()
}
