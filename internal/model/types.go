// Package model defines shared data structures.
package model

import "strconv"

// Shift labels for the two fixed duty periods.
const (
	ShiftDay   = "7:30 - 19:30"
	ShiftNight = "19:30 - 7:30"
)

// Entry is the in-progress record owned by the session. All fields hold the
// raw text the user typed; nothing here is validated.
type Entry struct {
	Shift        string
	Date         string
	CallReceived string
	Arrival      string
	Completion   string
	CallType     string

	PhysicalIntervention bool
	RestraintUsed        bool
	PoliceInvolved       bool
	OverDay              bool

	RequestedBy string
	Contact     string
	Notes       string
}

// NewEntry returns an entry with session defaults.
func NewEntry() Entry {
	return Entry{Shift: ShiftDay}
}

// Blank reports whether every meaningful field is empty. Shift always has a
// value and the checkboxes default to false, so neither counts.
func (e Entry) Blank() bool {
	return e.Date == "" &&
		e.CallReceived == "" &&
		e.Arrival == "" &&
		e.Completion == "" &&
		e.CallType == "" &&
		e.RequestedBy == "" &&
		e.Contact == "" &&
		e.Notes == ""
}

// Record is a submitted entry, immutable once assembled. Times are stored in
// colonized form and the date carries the processing year.
type Record struct {
	Date         string
	Entered      string
	Shift        string
	CallReceived string
	Arrival      string
	Completion   string
	CallType     string

	PhysicalIntervention string
	RestraintUsed        string
	PoliceInvolved       string

	RequestedBy string
	Contact     string
	Notes       string

	ToArrive         string
	CallToComplete   string
	ArriveToComplete string

	ToArriveMins         int
	CallToCompleteMins   int
	ArriveToCompleteMins int
}

// RecordHeader is the fixed column header of the monthly and master tables.
var RecordHeader = []string{
	"Date",
	"Time Entered",
	"Shift",
	"Call Received Time",
	"Arrival Time",
	"Completion Time",
	"Service Call Type",
	"Physical Intervention",
	"Restraint Used",
	"Police Involved",
	"Requested By",
	"Contact Information",
	"Notes",
	"Time Taken to Arrive",
	"Time Taken From Call to Completion",
	"Time Taken From Arrival to Completion",
	"Time Taken to Arrive (mins.)",
	"Time Taken From Call to Completion (mins.)",
	"Time Taken From Arrival to Completion (mins.)",
}

// Row renders the record in RecordHeader column order.
func (r Record) Row() []string {
	return []string{
		r.Date,
		r.Entered,
		r.Shift,
		r.CallReceived,
		r.Arrival,
		r.Completion,
		r.CallType,
		r.PhysicalIntervention,
		r.RestraintUsed,
		r.PoliceInvolved,
		r.RequestedBy,
		r.Contact,
		r.Notes,
		r.ToArrive,
		r.CallToComplete,
		r.ArriveToComplete,
		strconv.Itoa(r.ToArriveMins),
		strconv.Itoa(r.CallToCompleteMins),
		strconv.Itoa(r.ArriveToCompleteMins),
	}
}

// Draft is an unvalidated partial entry saved for later completion.
type Draft struct {
	Identifier string
	Entry      Entry
}

// DraftHeader is the fixed column header of the drafts table.
var DraftHeader = []string{
	"Identifier",
	"Date",
	"Shift",
	"Call Received Time",
	"Arrival Time",
	"Completion Time",
	"Service Call Type",
	"Physical Intervention",
	"Restraint Used",
	"Police Involved",
	"Requested By",
	"Contact Information",
	"Notes",
	"Time Over 24 Hours",
}

// Row renders the draft in DraftHeader column order.
func (d Draft) Row() []string {
	return []string{
		d.Identifier,
		d.Entry.Date,
		d.Entry.Shift,
		d.Entry.CallReceived,
		d.Entry.Arrival,
		d.Entry.Completion,
		d.Entry.CallType,
		YesNo(d.Entry.PhysicalIntervention),
		YesNo(d.Entry.RestraintUsed),
		YesNo(d.Entry.PoliceInvolved),
		d.Entry.RequestedBy,
		d.Entry.Contact,
		d.Entry.Notes,
		YesNo(d.Entry.OverDay),
	}
}

// DraftFromRow rebuilds a draft from a stored row. Short rows are padded so
// sheets with trailing empty cells stripped still load.
func DraftFromRow(row []string) Draft {
	cells := make([]string, len(DraftHeader))
	copy(cells, row)
	return Draft{
		Identifier: cells[0],
		Entry: Entry{
			Date:                 cells[1],
			Shift:                cells[2],
			CallReceived:         cells[3],
			Arrival:              cells[4],
			Completion:           cells[5],
			CallType:             cells[6],
			PhysicalIntervention: cells[7] == "Yes",
			RestraintUsed:        cells[8] == "Yes",
			PoliceInvolved:       cells[9] == "Yes",
			RequestedBy:          cells[10],
			Contact:              cells[11],
			Notes:                cells[12],
			OverDay:              cells[13] == "Yes",
		},
	}
}

// YesNo renders a checkbox answer the way the durable tables store it.
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
