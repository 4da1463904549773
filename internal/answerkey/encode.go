package answerkey

import "strings"

// Sentinel tokens of the encoded alphabet.
const (
	// UnknownToken stands in when no correct answer is determinable.
	UnknownToken = "?"
	// AllCorrectToken stands in when every listed choice is flagged correct.
	AllCorrectToken = "*"
)

// choiceClass tags the outcome of classifying a block's choice list.
type choiceClass int

const (
	classEmpty choiceClass = iota
	classAllCorrect
	classNoneCorrect
	classSubset
)

// Encode turns the ordered choice list of one block into its encoded token.
func Encode(choices []ChoicePosition) string {
	switch classify(choices) {
	case classEmpty, classNoneCorrect:
		return UnknownToken
	case classAllCorrect:
		return AllCorrectToken
	default:
		var letters strings.Builder
		for _, choice := range choices {
			if choice.Correct {
				letters.WriteString(positionLetter(choice.Position))
			}
		}
		return letters.String()
	}
}

// classify performs the three-way split over a choice list. "All marked"
// and "none marked" are distinct from "some subset marked".
func classify(choices []ChoicePosition) choiceClass {
	if len(choices) == 0 {
		return classEmpty
	}
	correct := 0
	for _, choice := range choices {
		if choice.Correct {
			correct++
		}
	}
	switch correct {
	case len(choices):
		return classAllCorrect
	case 0:
		return classNoneCorrect
	default:
		return classSubset
	}
}

// positionLetter maps a 1-based choice position to its letter (1 -> A).
func positionLetter(position int) string {
	if position < 1 {
		return UnknownToken
	}
	return string(rune('A' + position - 1))
}
