package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"incidententry/internal/model"
	"incidententry/internal/validate"
)

const (
	labelWidth     = 24
	suggestionRows = 5
	ruleWidth      = 70
)

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeAlert:
		return m.overlay(m.alertView())
	case modeIdentifier:
		return m.overlay(m.identifierView())
	case modeDrafts:
		return m.draftsView()
	default:
		return m.formView()
	}
}

func (m *Model) formView() string {
	var b strings.Builder
	rule := ruleStyle.Render(strings.Repeat("─", ruleWidth))

	b.WriteString(titleStyle.Render("Incident Entry Tool"))
	b.WriteString("\n")
	b.WriteString(m.shiftLine())
	b.WriteString("\n")
	b.WriteString(rule)
	b.WriteString("\n")

	b.WriteString(m.fieldLine(focusDate, "Date (mm/dd):", m.date.View(), m.dateStatus))
	b.WriteString(m.fieldLine(focusCallReceived, "Call Received (24hr.):", m.callReceived.View(), m.crStatus))
	b.WriteString(m.fieldLine(focusArrival, "Arrival Time (24hr.):", m.arrival.View(), m.arrStatus))
	b.WriteString(m.fieldLine(focusCompletion, "Completion Time (24hr.):", m.completion.View(), m.compStatus))
	b.WriteString(rule)
	b.WriteString("\n")

	b.WriteString(m.fieldLine(focusCallType, "Service Call Type:", m.callType.View(), m.callTypeStatus))
	b.WriteString(m.suggestionList())

	b.WriteString(m.checkboxLine(focusPhysical, "Physical Intervention:", m.physical))
	b.WriteString(m.checkboxLine(focusRestraint, "Restraint Used:", m.restraint))
	b.WriteString(m.checkboxLine(focusPolice, "Police Involved:", m.police))

	b.WriteString(m.fieldLine(focusRequestedBy, "Requested By:", m.requestedBy.View(), validate.Neutral))
	b.WriteString(m.fieldLine(focusContact, "Contact Information:", m.contact.View(), validate.Neutral))

	b.WriteString("\n")
	b.WriteString(m.label(focusNotes, "Notes:", validate.Neutral))
	b.WriteString("\n")
	b.WriteString(m.notes.View())
	b.WriteString("\n\n")

	b.WriteString(m.checkboxLine(focusOverDay, "Was Time From Call to Completion >24 Hours?", m.overDay))
	b.WriteString(rule)
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("tab: next field • ctrl+s: submit • ctrl+d: save draft and exit • ctrl+o: load saved entry • ctrl+c: quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) shiftLine() string {
	day := "( ) " + model.ShiftDay
	night := "( ) " + model.ShiftNight
	if m.shiftNight {
		night = "(•) " + model.ShiftNight
	} else {
		day = "(•) " + model.ShiftDay
	}
	return m.label(focusShift, "SHIFT:", validate.Neutral) + day + "   " + night
}

func (m *Model) fieldLine(field int, label, view string, status validate.Status) string {
	return m.label(field, label, status) + view + "\n"
}

func (m *Model) checkboxLine(field int, label string, checked bool) string {
	box := "[ ] Yes"
	if checked {
		box = "[x] Yes"
	}
	return m.label(field, label, validate.Neutral) + box + "\n"
}

// label renders a right-aligned field label. The validation status drives the
// color; focus wins over a neutral status so the cursor position is visible.
func (m *Model) label(field int, text string, status validate.Status) string {
	style := labelStyle
	switch status {
	case validate.Pass:
		style = passStyle
	case validate.Fail:
		style = failStyle
	default:
		if m.mode == modeForm && m.focus == field {
			style = focusedStyle
		}
	}
	return style.Render(fmt.Sprintf("%*s", labelWidth, text)) + " "
}

// suggestionList renders a scrolling window of the filtered catalog, the
// highlighted row marked. Height matches the original listbox.
func (m *Model) suggestionList() string {
	if len(m.suggestions) == 0 {
		return m.label(-1, "", validate.Neutral) + mutedStyle.Render("(no matching call types)") + "\n"
	}
	start := 0
	if m.highlight >= suggestionRows {
		start = m.highlight - suggestionRows + 1
	}
	end := start + suggestionRows
	if end > len(m.suggestions) {
		end = len(m.suggestions)
	}
	var b strings.Builder
	for i := start; i < end; i++ {
		marker := "  "
		style := suggestStyle
		if i == m.highlight {
			marker = "> "
			style = focusedStyle
		}
		b.WriteString(m.label(-1, "", validate.Neutral))
		b.WriteString(style.Render(marker + m.suggestions[i]))
		b.WriteString("\n")
	}
	if end < len(m.suggestions) {
		b.WriteString(m.label(-1, "", validate.Neutral))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("  … %d more", len(m.suggestions)-end)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) identifierView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Identifying Information"))
	b.WriteString("\n\n")
	b.WriteString("Please enter a Patient ID or patient name:\n\n")
	b.WriteString(m.identifier.View())
	b.WriteString("\n\n")
	if m.identifierHint != "" {
		b.WriteString(failStyle.Render(m.identifierHint))
		b.WriteString("\n\n")
	}
	b.WriteString(mutedStyle.Render("enter: save • esc: cancel"))
	return modalStyle.Render(b.String())
}

func (m *Model) alertView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.alert.title))
	b.WriteString("\n\n")
	b.WriteString(m.alert.message)
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("enter: ok"))
	return modalStyle.Render(b.String())
}

func (m *Model) draftsView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Saved Drafts"))
	b.WriteString("\n\n")
	b.WriteString(m.draftTable.View())
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("enter: import selected draft • esc: back"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) overlay(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
