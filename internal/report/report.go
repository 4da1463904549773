package report

// Entry is one document's answer key for report rendering.
type Entry struct {
	SourceFile string
	Variant    string
	Tokens     []string
}

// BuildReportHTML renders the answer key report page for a prefix.
func BuildReportHTML(prefix string, entries []Entry) (string, error) {
	return renderReportHTML(prefix, entries)
}
