package answerkey

import "examkit/internal/tex"

// Choice command names. Classification is exact name equality: the
// lowercase form marks a plain choice, the uppercase form marks the
// choice flagged as correct.
const (
	cmdChoice        = "choice"
	cmdCorrectChoice = "CHOICE"
)

// ChoicePosition is one recognized choice inside a block, numbered from 1
// in block-local source order.
type ChoicePosition struct {
	Position int
	Correct  bool
}

// CollectChoices scans one environment body and numbers its choice
// commands. Commands with other names count toward nothing; numbering
// never skips or reorders.
func CollectChoices(body string) []ChoicePosition {
	var choices []ChoicePosition
	scanner := tex.NewScanner(body)
	for {
		cmd, ok := scanner.Next()
		if !ok {
			return choices
		}
		switch cmd.Name {
		case cmdChoice:
			choices = append(choices, ChoicePosition{Position: len(choices) + 1})
		case cmdCorrectChoice:
			choices = append(choices, ChoicePosition{Position: len(choices) + 1, Correct: true})
		}
	}
}
