package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"incidententry/internal/model"
)

// draftColumns mirrors the draft browser layout: identifying columns first,
// notes omitted.
var draftColumns = []table.Column{
	{Title: "IDENTIFIER", Width: 15},
	{Title: "DATE", Width: 7},
	{Title: "SHIFT", Width: 13},
	{Title: "CALL RECEIVED", Width: 13},
	{Title: "ARRIVAL", Width: 8},
	{Title: "SERVICE CALL TYPE", Width: 18},
	{Title: "PHYS. INTERV.", Width: 13},
	{Title: "RESTRAINT", Width: 10},
	{Title: "POLICE", Width: 7},
	{Title: "REQUESTED BY", Width: 12},
	{Title: "CONTACT INFO.", Width: 13},
}

func newDraftTable(drafts []model.Draft) table.Model {
	rows := make([]table.Row, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, draftRow(d))
	}
	t := table.New(
		table.WithColumns(draftColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(draftTableHeight(len(rows))),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Foreground(lipgloss.Color("#B0B0B0")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#3A3A3A")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

// draftRow truncates each cell to its column's display width so wide runes
// never misalign the table.
func draftRow(d model.Draft) table.Row {
	e := d.Entry
	cells := []string{
		d.Identifier,
		e.Date,
		e.Shift,
		e.CallReceived,
		e.Arrival,
		e.CallType,
		model.YesNo(e.PhysicalIntervention),
		model.YesNo(e.RestraintUsed),
		model.YesNo(e.PoliceInvolved),
		e.RequestedBy,
		e.Contact,
	}
	row := make(table.Row, len(cells))
	for i, cell := range cells {
		row[i] = runewidth.Truncate(cell, draftColumns[i].Width, "…")
	}
	return row
}

func draftTableHeight(rows int) int {
	const maxRows = 10
	if rows > maxRows {
		return maxRows
	}
	if rows < 1 {
		return 1
	}
	return rows
}
