package answerkey

import (
	"strings"

	"examkit/internal/tex"
)

// recordSeparator delimits fields of an answer key record.
const recordSeparator = "\t"

// Key is the answer key of one document: its variant identifier plus one
// encoded token per choice block, in block order.
type Key struct {
	Variant string
	Tokens  []string
}

// ExtractKey runs the full pipeline over raw document text: strip comments,
// extract choice environments, number the choices of each block, and encode
// them. The result is recomputed fully on every call; nothing is cached.
func ExtractKey(text, variant string) Key {
	stripped := tex.StripComments(text)
	envs := tex.ChoiceEnvironments(stripped)
	tokens := make([]string, 0, len(envs))
	for _, env := range envs {
		tokens = append(tokens, Encode(CollectChoices(env.Body)))
	}
	return Key{Variant: variant, Tokens: tokens}
}

// Record renders the key as a single tab-separated line: the variant
// identifier followed by every block token in block order.
func (k Key) Record() string {
	fields := make([]string, 0, len(k.Tokens)+1)
	fields = append(fields, k.Variant)
	fields = append(fields, k.Tokens...)
	return strings.Join(fields, recordSeparator)
}
