package tex

import (
	"regexp"
	"sort"
)

// EnvKind identifies a recognized choice environment.
type EnvKind string

const (
	// EnvChoices marks a \begin{choices}...\end{choices} environment.
	EnvChoices EnvKind = "choices"
	// EnvOneParChoices marks a \begin{oneparchoices}...\end{oneparchoices} environment.
	EnvOneParChoices EnvKind = "oneparchoices"
)

// Environment is one extracted choice environment body.
type Environment struct {
	Kind  EnvKind
	Start int
	Body  string
}

// choicesPattern matches a choices environment with an optional [n] argument.
// Matching is non-greedy: the body ends at the first closing marker.
var choicesPattern = regexp.MustCompile(`(?s)\\begin\{choices\}\s*(?:\[[^\]]*\])?\s*(.*?)\\end\{choices\}`)

// oneParChoicesPattern matches a oneparchoices environment.
var oneParChoicesPattern = regexp.MustCompile(`(?s)\\begin\{oneparchoices\}\s*(.*?)\\end\{oneparchoices\}`)

// ChoiceEnvironments returns every choices and oneparchoices body in text,
// ordered by start offset. The text is expected to be comment-stripped.
// An opening marker without a matching closing marker yields no environment.
func ChoiceEnvironments(text string) []Environment {
	var envs []Environment
	for _, match := range choicesPattern.FindAllStringSubmatchIndex(text, -1) {
		envs = append(envs, Environment{
			Kind:  EnvChoices,
			Start: match[0],
			Body:  text[match[2]:match[3]],
		})
	}
	for _, match := range oneParChoicesPattern.FindAllStringSubmatchIndex(text, -1) {
		envs = append(envs, Environment{
			Kind:  EnvOneParChoices,
			Start: match[0],
			Body:  text[match[2]:match[3]],
		})
	}
	sort.SliceStable(envs, func(i, j int) bool { return envs[i].Start < envs[j].Start })
	return envs
}
