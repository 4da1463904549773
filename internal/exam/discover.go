package exam

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindQuestionFiles locates question sources for a prefix. It first tries
// the primary shapes prefix-X-questions.tex and prefixX-questions.tex for
// every lowercase letter, then falls back to prefix-X.tex and prefixX.tex.
// Results are deduplicated and sorted case-insensitively.
func FindQuestionFiles(prefix string) []string {
	primary := make([]string, 0, 52)
	fallback := make([]string, 0, 52)
	for ch := 'a'; ch <= 'z'; ch++ {
		primary = append(primary,
			fmt.Sprintf("%s-%c-questions.tex", prefix, ch),
			fmt.Sprintf("%s%c-questions.tex", prefix, ch),
		)
		fallback = append(fallback,
			fmt.Sprintf("%s-%c.tex", prefix, ch),
			fmt.Sprintf("%s%c.tex", prefix, ch),
		)
	}
	if files := existingFiles(primary); len(files) > 0 {
		return files
	}
	return existingFiles(fallback)
}

// FindVersionFiles locates versioned exam sources for a base name,
// preferring base-X.tex over baseX.tex.
func FindVersionFiles(base string) ([]string, error) {
	files, err := filepath.Glob(base + "-?.tex")
	if err != nil {
		return nil, fmt.Errorf("glob version files: %w", err)
	}
	if len(files) == 0 {
		files, err = filepath.Glob(base + "?.tex")
		if err != nil {
			return nil, fmt.Errorf("glob version files: %w", err)
		}
	}
	sort.Strings(files)
	return files, nil
}

// existingFiles filters candidates down to files that exist on disk.
func existingFiles(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	var files []string
	for _, candidate := range candidates {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, candidate)
	}
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i]) < strings.ToLower(files[j])
	})
	return files
}
