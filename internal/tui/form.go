// Package tui provides the Bubble Tea entry form.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"incidententry/internal/catalog"
	"incidententry/internal/config"
	"incidententry/internal/draft"
	"incidententry/internal/model"
	"incidententry/internal/submit"
	"incidententry/internal/validate"
)

const (
	focusShift = iota
	focusDate
	focusCallReceived
	focusArrival
	focusCompletion
	focusCallType
	focusPhysical
	focusRestraint
	focusPolice
	focusRequestedBy
	focusContact
	focusNotes
	focusOverDay
	focusCount
)

type mode int

const (
	modeForm mode = iota
	modeIdentifier
	modeDrafts
	modeAlert
)

type alert struct {
	title   string
	message string
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CC2C"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	suggestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	modalStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea entry form.
type Model struct {
	cfg      config.Config
	drafts   *draft.Store
	pipeline *submit.Pipeline

	mode  mode
	focus int

	shiftNight bool

	date         textinput.Model
	callReceived textinput.Model
	arrival      textinput.Model
	completion   textinput.Model
	callType     textinput.Model
	requestedBy  textinput.Model
	contact      textinput.Model
	notes        textarea.Model

	physical  bool
	restraint bool
	police    bool
	overDay   bool

	dateStatus     validate.Status
	crStatus       validate.Status
	arrStatus      validate.Status
	compStatus     validate.Status
	callTypeStatus validate.Status
	suggestions    []string
	highlight      int

	identifier     textinput.Model
	identifierHint string
	draftTable     table.Model

	alert alert

	width  int
	height int
}

// NewModel constructs the entry form.
func NewModel(cfg config.Config, drafts *draft.Store, pipeline *submit.Pipeline) *Model {
	m := &Model{
		cfg:      cfg,
		drafts:   drafts,
		pipeline: pipeline,
	}
	m.date = newInput(5, "mm/dd")
	m.callReceived = newInput(5, "HHMM")
	m.arrival = newInput(5, "HHMM")
	m.completion = newInput(5, "HHMM")
	m.callType = newInput(38, "")
	m.requestedBy = newInput(30, "")
	m.contact = newInput(30, "")

	m.notes = textarea.New()
	m.notes.SetHeight(3)
	m.notes.SetWidth(60)
	m.notes.CharLimit = 0

	m.identifier = newInput(30, "")

	m.suggestions = catalog.Filter("")
	m.highlight = -1
	m.focus = focusShift
	m.setFocus(focusShift)
	return m
}

func newInput(width int, placeholder string) textinput.Model {
	in := textinput.New()
	in.Width = width
	in.CharLimit = 0
	in.Placeholder = placeholder
	in.Prompt = ""
	return in
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.mode {
		case modeAlert:
			return m.updateAlert(msg)
		case modeIdentifier:
			return m.updateIdentifier(msg)
		case modeDrafts:
			return m.updateDrafts(msg)
		default:
			return m.updateForm(msg)
		}
	default:
		return m, nil
	}
}

func (m *Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "enter":
		if m.focus == focusCallType && m.highlight >= 0 && msg.String() == "enter" {
			m.applyHighlight()
			return m, nil
		}
		if m.focus == focusNotes && msg.String() == "enter" {
			// Newline inside the notes field.
			break
		}
		m.moveFocus(1)
		return m, nil
	case "shift+tab":
		m.moveFocus(-1)
		return m, nil
	case "ctrl+s":
		return m.submit()
	case "ctrl+d":
		return m.saveDraft()
	case "ctrl+o":
		return m.openDrafts()
	}

	switch m.focus {
	case focusShift:
		switch msg.String() {
		case " ", "left", "right":
			m.shiftNight = !m.shiftNight
		}
		return m, nil
	case focusPhysical:
		if msg.String() == " " {
			m.physical = !m.physical
		}
		return m, nil
	case focusRestraint:
		if msg.String() == " " {
			m.restraint = !m.restraint
		}
		return m, nil
	case focusPolice:
		if msg.String() == " " {
			m.police = !m.police
		}
		return m, nil
	case focusOverDay:
		if msg.String() == " " {
			m.overDay = !m.overDay
		}
		return m, nil
	case focusCallType:
		switch msg.String() {
		case "down":
			if m.highlight < len(m.suggestions)-1 {
				m.highlight++
			}
			return m, nil
		case "up":
			if m.highlight > 0 {
				m.highlight--
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.callType, cmd = m.callType.Update(msg)
		// Typing resets the highlight and the cosmetic state, then refilters.
		m.highlight = -1
		m.callTypeStatus = validate.Neutral
		m.suggestions = catalog.Filter(m.callType.Value())
		return m, cmd
	case focusNotes:
		var cmd tea.Cmd
		m.notes, cmd = m.notes.Update(msg)
		return m, cmd
	default:
		return m.updateInput(msg)
	}
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusDate:
		m.date, cmd = m.date.Update(msg)
		m.dateStatus = validate.Neutral
	case focusCallReceived:
		m.callReceived, cmd = m.callReceived.Update(msg)
		m.crStatus = validate.Neutral
	case focusArrival:
		m.arrival, cmd = m.arrival.Update(msg)
		m.arrStatus = validate.Neutral
	case focusCompletion:
		m.completion, cmd = m.completion.Update(msg)
		m.compStatus = validate.Neutral
	case focusRequestedBy:
		m.requestedBy, cmd = m.requestedBy.Update(msg)
	case focusContact:
		m.contact, cmd = m.contact.Update(msg)
	}
	return m, cmd
}

// moveFocus advances the focus ring. Leaving a validated field runs the live
// check, which only affects the highlight color.
func (m *Model) moveFocus(delta int) {
	m.liveValidate(m.focus)
	next := (m.focus + delta + focusCount) % focusCount
	m.setFocus(next)
}

func (m *Model) setFocus(next int) {
	m.date.Blur()
	m.callReceived.Blur()
	m.arrival.Blur()
	m.completion.Blur()
	m.callType.Blur()
	m.requestedBy.Blur()
	m.contact.Blur()
	m.notes.Blur()

	m.focus = next
	switch next {
	case focusDate:
		m.date.Focus()
	case focusCallReceived:
		m.callReceived.Focus()
	case focusArrival:
		m.arrival.Focus()
	case focusCompletion:
		m.completion.Focus()
	case focusCallType:
		m.callType.Focus()
	case focusRequestedBy:
		m.requestedBy.Focus()
	case focusContact:
		m.contact.Focus()
	case focusNotes:
		m.notes.Focus()
	}
}

func (m *Model) liveValidate(field int) {
	switch field {
	case focusDate:
		m.dateStatus = validate.Date(m.date.Value(), validate.Live).Status
	case focusCallReceived:
		m.crStatus = validate.Clock(m.callReceived.Value(), validate.Live)
	case focusArrival:
		m.arrStatus = validate.Clock(m.arrival.Value(), validate.Live)
	case focusCompletion:
		m.compStatus = validate.Clock(m.completion.Value(), validate.Live)
	case focusCallType:
		res := validate.CallType(m.callType.Value(), m.highlighted(), validate.Live)
		m.callTypeStatus = res.Status
		if res.Canonical != "" {
			m.callType.SetValue(res.Canonical)
			m.suggestions = catalog.Filter(res.Canonical)
		}
	}
}

func (m *Model) highlighted() string {
	if m.highlight >= 0 && m.highlight < len(m.suggestions) {
		return m.suggestions[m.highlight]
	}
	return ""
}

// applyHighlight writes the highlighted suggestion into the field, the same
// as typing its exact text.
func (m *Model) applyHighlight() {
	s := m.highlighted()
	if s == "" {
		return
	}
	m.callType.SetValue(s)
	m.callTypeStatus = validate.Pass
	m.suggestions = catalog.Filter(s)
	m.highlight = -1
}

// entry assembles the working entry from the widgets.
func (m *Model) entry() model.Entry {
	shift := model.ShiftDay
	if m.shiftNight {
		shift = model.ShiftNight
	}
	return model.Entry{
		Shift:                shift,
		Date:                 strings.TrimSpace(m.date.Value()),
		CallReceived:         strings.TrimSpace(m.callReceived.Value()),
		Arrival:              strings.TrimSpace(m.arrival.Value()),
		Completion:           strings.TrimSpace(m.completion.Value()),
		CallType:             strings.TrimSpace(m.callType.Value()),
		PhysicalIntervention: m.physical,
		RestraintUsed:        m.restraint,
		PoliceInvolved:       m.police,
		OverDay:              m.overDay,
		RequestedBy:          strings.TrimSpace(m.requestedBy.Value()),
		Contact:              strings.TrimSpace(m.contact.Value()),
		Notes:                m.notes.Value(),
	}
}

func (m *Model) submit() (tea.Model, tea.Cmd) {
	out := m.pipeline.Submit(m.entry(), m.highlighted(), time.Now())

	m.dateStatus = out.Fields.Date
	m.crStatus = out.Fields.CallReceived
	m.arrStatus = out.Fields.Arrival
	m.compStatus = out.Fields.Completion
	m.callTypeStatus = out.Fields.CallType
	if out.Canonical != "" {
		m.callType.SetValue(out.Canonical)
		m.suggestions = catalog.Filter(out.Canonical)
		m.highlight = -1
	}

	switch out.Status {
	case submit.Rejected:
		// The red highlight is the only feedback; everything entered stays.
		return m, nil
	case submit.MasterMissing:
		m.showAlert("Data Load Error", "The Master file can not be found.")
		return m, nil
	case submit.Failed:
		m.showAlert("Save Error", out.Err.Error())
		return m, nil
	default:
		m.resetForm()
		m.showAlert("Success", "Entry Successfully Submitted!")
		return m, nil
	}
}

func (m *Model) saveDraft() (tea.Model, tea.Cmd) {
	if m.entry().Blank() {
		// Informational, not an error; no identifier is asked for.
		m.showAlert("Nothing to Save", "To save a draft, you must have entered data.")
		return m, nil
	}
	m.identifier.SetValue("")
	m.identifierHint = ""
	m.identifier.Focus()
	m.mode = modeIdentifier
	return m, textinput.Blink
}

func (m *Model) updateIdentifier(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancelled: abort the save entirely, nothing is written.
		m.mode = modeForm
		return m, nil
	case "enter":
		id := strings.TrimSpace(m.identifier.Value())
		if id == "" {
			// Not a cancel: stay in the prompt and say what is missing.
			m.identifierHint = "An identifier is required. Press esc to cancel."
			return m, nil
		}
		if err := m.drafts.Save(m.entry(), id); err != nil {
			m.mode = modeForm
			m.showAlert("Save Error", err.Error())
			return m, nil
		}
		// Save Draft and Exit.
		return m, tea.Quit
	}
	m.identifierHint = ""
	var cmd tea.Cmd
	m.identifier, cmd = m.identifier.Update(msg)
	return m, cmd
}

func (m *Model) openDrafts() (tea.Model, tea.Cmd) {
	if m.drafts.Len() == 0 {
		m.showAlert("No Drafts", "There are no saved drafts.")
		return m, nil
	}
	m.draftTable = newDraftTable(m.drafts.List())
	m.mode = modeDrafts
	return m, nil
}

func (m *Model) updateDrafts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeForm
		return m, nil
	case "enter":
		i := m.draftTable.Cursor()
		d, err := m.drafts.Open(i)
		if err != nil {
			m.showAlert("Selection Error", "Please select a draft.")
			return m, nil
		}
		m.loadDraft(d)
		m.mode = modeForm
		return m, nil
	}
	var cmd tea.Cmd
	m.draftTable, cmd = m.draftTable.Update(msg)
	return m, cmd
}

// loadDraft copies the stored raw text back into the widgets. Nothing is
// validated on the way in; the draft stays in the store until a successful
// submission removes it.
func (m *Model) loadDraft(d model.Draft) {
	m.resetForm()
	e := d.Entry
	m.shiftNight = e.Shift == model.ShiftNight
	m.date.SetValue(e.Date)
	m.callReceived.SetValue(e.CallReceived)
	m.arrival.SetValue(e.Arrival)
	m.completion.SetValue(e.Completion)
	m.callType.SetValue(e.CallType)
	m.requestedBy.SetValue(e.RequestedBy)
	m.contact.SetValue(e.Contact)
	m.notes.SetValue(e.Notes)
	m.physical = e.PhysicalIntervention
	m.restraint = e.RestraintUsed
	m.police = e.PoliceInvolved
	m.overDay = e.OverDay
	m.suggestions = catalog.Filter(e.CallType)
	m.highlight = -1
}

func (m *Model) resetForm() {
	m.shiftNight = false
	m.date.SetValue("")
	m.callReceived.SetValue("")
	m.arrival.SetValue("")
	m.completion.SetValue("")
	m.callType.SetValue("")
	m.requestedBy.SetValue("")
	m.contact.SetValue("")
	m.notes.SetValue("")
	m.physical = false
	m.restraint = false
	m.police = false
	m.overDay = false
	m.dateStatus = validate.Neutral
	m.crStatus = validate.Neutral
	m.arrStatus = validate.Neutral
	m.compStatus = validate.Neutral
	m.callTypeStatus = validate.Neutral
	m.suggestions = catalog.Filter("")
	m.highlight = -1
	m.setFocus(focusShift)
}

func (m *Model) showAlert(title, message string) {
	m.alert = alert{title: title, message: message}
	m.mode = modeAlert
}

func (m *Model) updateAlert(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		m.alert = alert{}
		m.mode = modeForm
	}
	return m, nil
}
