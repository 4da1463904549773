package live

import (
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// defaultColumns returns the table layout before the first window size.
func defaultColumns() []table.Column {
	return []table.Column{
		{Title: "File", Width: 24},
		{Title: "Ver", Width: 4},
		{Title: "Status", Width: 22},
		{Title: "Steps", Width: 6},
		{Title: "Elapsed", Width: 10},
	}
}

// columnsForWidth stretches the file column to fill the terminal width.
func columnsForWidth(width int) []table.Column {
	columns := defaultColumns()
	fixed := 0
	for _, column := range columns[1:] {
		fixed += column.Width
	}
	fileWidth := width - fixed - len(columns)*2
	if fileWidth < columns[0].Width {
		return columns
	}
	columns[0].Width = fileWidth
	return columns
}

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

// rowsForState converts UI state into table rows.
func rowsForState(state State, now time.Time, noColor bool) []table.Row {
	rows := make([]table.Row, 0, len(state.Rows))
	for _, row := range state.Rows {
		rows = append(rows, table.Row{
			formatFile(row),
			row.Version,
			formatStatus(row, noColor),
			formatSubsteps(row.Substeps),
			formatRowDuration(row, now),
		})
	}
	return rows
}
