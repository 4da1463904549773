package report

import (
	"context"
	"strings"
)

// renderReportHTML renders the report page into a string.
func renderReportHTML(prefix string, entries []Entry) (string, error) {
	var builder strings.Builder
	if err := ReportPage(prefix, entries).Render(context.Background(), &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
