package report

import "examkit/internal/answerkey"

// describeToken explains an encoded answer token for human readers.
func describeToken(token string) string {
	switch token {
	case answerkey.UnknownToken:
		return "no correct answer found"
	case answerkey.AllCorrectToken:
		return "all choices correct"
	default:
		if len(token) == 1 {
			return "correct choice: " + token
		}
		return "correct choices: " + token
	}
}
