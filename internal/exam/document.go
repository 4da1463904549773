package exam

import (
	"fmt"
	"os"
)

// Document is one exam source ready for key extraction.
type Document struct {
	Path    string
	Variant string
	Text    string
}

// LoadDocument reads a question file and derives its variant letter.
func LoadDocument(prefix, path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	return Document{
		Path:    path,
		Variant: VariantLetter(prefix, path),
		Text:    string(data),
	}, nil
}
