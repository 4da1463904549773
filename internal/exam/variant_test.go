package exam

import "testing"

// TestVariantLetterShapes verifies the accepted filename shapes.
func TestVariantLetterShapes(t *testing.T) {
	cases := []struct {
		prefix   string
		filename string
		want     string
	}{
		{"exam", "exam-a-questions.tex", "A"},
		{"exam", "examb-questions.tex", "B"},
		{"exam", "exam-c.tex", "C"},
		{"exam", "examd.tex", "D"},
		{"dir/exam", "dir/exam-a-questions.tex", "A"},
		{"exam", "exam-questions.tex", UnknownVariant},
		{"exam", "other-a.tex", UnknownVariant},
		{"exam", "exam-A.tex", UnknownVariant},
	}
	for _, tc := range cases {
		if got := VariantLetter(tc.prefix, tc.filename); got != tc.want {
			t.Fatalf("VariantLetter(%q, %q): expected %q, got %q", tc.prefix, tc.filename, tc.want, got)
		}
	}
}

// TestVersionLetter verifies the trailing stem letter is returned.
func TestVersionLetter(t *testing.T) {
	if got := VersionLetter("exam-b.tex"); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := VersionLetter("dir/examc.tex"); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
}
