package builder

import "regexp"

// AnswersMode selects which document option a build phase enables.
type AnswersMode string

const (
	// ModeAnswers enables the answers document option.
	ModeAnswers AnswersMode = "answers"
	// ModeNoAnswers enables the noanswers document option.
	ModeNoAnswers AnswersMode = "noanswers"
)

// answersLine matches the (no)answers option token at the start of a line,
// with optional indentation, comment marker, and leading comma.
var answersLine = regexp.MustCompile(`(?m)^( *%? *,? *)(?:no)?answers\b`)

// SetAnswersMode rewrites the document's answers option to the given mode.
// Text without an option line is returned unchanged.
func SetAnswersMode(text string, mode AnswersMode) string {
	if !answersLine.MatchString(text) {
		return text
	}
	return answersLine.ReplaceAllString(text, "${1}"+string(mode))
}
