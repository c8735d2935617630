package live

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// tableStyles returns table styles for the UI.
func tableStyles(noColor bool) table.Styles {
	if noColor {
		return table.DefaultStyles()
	}
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	return styles
}

func attemptColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Attempt", Width: 10},
		{Title: "Score", Width: 11},
		{Title: "%", Width: 5},
		{Title: "Ended", Width: 9},
	}
}

// attemptRows converts finished attempts into table rows, newest first.
func attemptRows(attempts []Attempt) []table.Row {
	rows := make([]table.Row, 0, len(attempts))
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		ended := "answered"
		if a.TimedOut {
			ended = "time up"
		}
		rows = append(rows, table.Row{
			fmtInt(a.Number),
			shortID(a.ID),
			fmtInt(a.Score) + "/" + fmtInt(a.Total),
			formatPercent(a.Score, a.Total),
			ended,
		})
	}
	return rows
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
