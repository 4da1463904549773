package report

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// ReportPage builds the answer key report as a templ component.
func ReportPage(prefix string, entries []Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>Answer Keys: "+templ.EscapeString(prefix)+"</title></head><body>\n"); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "<h1>Answer Keys: %s</h1>\n", templ.EscapeString(prefix)); err != nil {
			return err
		}
		for _, entry := range entries {
			if err := variantSection(entry).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</body></html>\n")
		return err
	})
}

// variantSection renders one document's key as a table.
func variantSection(entry Entry) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<h2>Variant %s <small>(%s)</small></h2>\n<table>\n<tr><th>Question</th><th>Key</th><th></th></tr>\n",
			templ.EscapeString(entry.Variant), templ.EscapeString(entry.SourceFile)); err != nil {
			return err
		}
		for i, token := range entry.Tokens {
			if _, err := fmt.Fprintf(w, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>\n",
				i+1, templ.EscapeString(token), templ.EscapeString(describeToken(token))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n")
		return err
	})
}
