package exam

import (
	"path/filepath"
	"regexp"
	"strings"
)

// UnknownVariant is the sentinel used when no variant letter can be derived.
const UnknownVariant = "?"

// VariantLetter derives the uppercase variant letter from a question file
// name. The letter sits between the prefix and an optional -questions
// suffix, with or without a separating dash. Returns UnknownVariant when
// the name does not match.
func VariantLetter(prefix, filename string) string {
	base := filepath.Base(filename)
	stem := regexp.QuoteMeta(filepath.Base(prefix))
	pattern, err := regexp.Compile(`^` + stem + `-?([a-z])(?:-questions)?\.tex$`)
	if err != nil {
		return UnknownVariant
	}
	match := pattern.FindStringSubmatch(base)
	if match == nil {
		return UnknownVariant
	}
	return strings.ToUpper(match[1])
}

// VersionLetter returns the trailing letter of a versioned exam file stem,
// e.g. exam-b.tex -> b.
func VersionLetter(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if stem == "" {
		return ""
	}
	return stem[len(stem)-1:]
}
