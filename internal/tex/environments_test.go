package tex

import "testing"

// TestChoiceEnvironmentsOrdersByOffset verifies interleaved kinds are merged
// in document order.
func TestChoiceEnvironmentsOrdersByOffset(t *testing.T) {
	text := "intro\n" +
		"\\begin{oneparchoices}one\\end{oneparchoices}\n" +
		"middle\n" +
		"\\begin{choices}two\\end{choices}\n"
	envs := ChoiceEnvironments(text)
	if len(envs) != 2 {
		t.Fatalf("expected 2 environments, got %d", len(envs))
	}
	if envs[0].Kind != EnvOneParChoices || envs[0].Body != "one" {
		t.Fatalf("unexpected first environment: %+v", envs[0])
	}
	if envs[1].Kind != EnvChoices || envs[1].Body != "two" {
		t.Fatalf("unexpected second environment: %+v", envs[1])
	}
}

// TestChoiceEnvironmentsSkipsSizeHint verifies the [N] argument after
// \begin{choices} is not part of the body.
func TestChoiceEnvironmentsSkipsSizeHint(t *testing.T) {
	text := "\\begin{choices}[2]\n\\choice A\n\\end{choices}"
	envs := ChoiceEnvironments(text)
	if len(envs) != 1 {
		t.Fatalf("expected 1 environment, got %d", len(envs))
	}
	if envs[0].Body != "\\choice A\n" {
		t.Fatalf("size hint leaked into body: %q", envs[0].Body)
	}
}

// TestChoiceEnvironmentsDropsUnterminated verifies an opening marker without
// a closing marker yields nothing.
func TestChoiceEnvironmentsDropsUnterminated(t *testing.T) {
	text := "\\begin{choices}\n\\choice A\n"
	if envs := ChoiceEnvironments(text); len(envs) != 0 {
		t.Fatalf("expected no environments, got %d", len(envs))
	}
}

// TestChoiceEnvironmentsNonGreedy verifies the body ends at the first
// matching closing marker.
func TestChoiceEnvironmentsNonGreedy(t *testing.T) {
	text := "\\begin{choices}first\\end{choices}between\\begin{choices}second\\end{choices}"
	envs := ChoiceEnvironments(text)
	if len(envs) != 2 {
		t.Fatalf("expected 2 environments, got %d", len(envs))
	}
	if envs[0].Body != "first" || envs[1].Body != "second" {
		t.Fatalf("greedy match detected: %q / %q", envs[0].Body, envs[1].Body)
	}
}

// TestChoiceEnvironmentsEmptyText verifies empty input yields no environments.
func TestChoiceEnvironmentsEmptyText(t *testing.T) {
	if envs := ChoiceEnvironments(""); len(envs) != 0 {
		t.Fatalf("expected no environments, got %d", len(envs))
	}
}
