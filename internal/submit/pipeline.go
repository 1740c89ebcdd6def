// Package submit orchestrates a submission: authoritative validation, record
// assembly, the dual-dataset append, and the side channels around it.
package submit

import (
	"fmt"
	"strings"
	"time"

	"incidententry/internal/config"
	"incidententry/internal/dataset"
	"incidententry/internal/draft"
	"incidententry/internal/model"
	"incidententry/internal/report"
	"incidententry/internal/timemath"
	"incidententry/internal/validate"
)

// Status is the terminal state of a submission attempt.
type Status int

const (
	// Rejected means at least one required field failed authoritative
	// validation. Nothing was mutated.
	Rejected Status = iota
	// MasterMissing means the master workbook could not be located. The
	// commit was aborted and nothing was mutated.
	MasterMissing
	// Failed means an essential write failed mid-commit.
	Failed
	// Committed means the record was appended to both datasets.
	Committed
)

// Outcome reports the result of a submission attempt.
type Outcome struct {
	Status Status
	// Fields carries the per-field flags for highlight feedback.
	Fields validate.State
	// Canonical is the catalog string to force back into the call type
	// field when a highlighted suggestion matched.
	Canonical string
	// Record is the appended record when Status is Committed.
	Record model.Record
	// Err carries detail for Failed.
	Err error
}

// Pipeline owns one submission path: it reads and writes the datasets named
// by the configuration and cleans up the draft store on success.
type Pipeline struct {
	cfg    config.Config
	drafts *draft.Store
}

// New constructs a pipeline over the given configuration and draft store.
func New(cfg config.Config, drafts *draft.Store) *Pipeline {
	return &Pipeline{cfg: cfg, drafts: drafts}
}

// Submit validates the entry and, if it passes, appends the assembled record
// to the monthly and master datasets. highlighted is the currently
// highlighted catalog suggestion, if any. The caller clears the form on a
// Committed outcome; every other outcome leaves all entered values intact.
func (p *Pipeline) Submit(entry model.Entry, highlighted string, now time.Time) Outcome {
	dateRes := validate.Date(entry.Date, validate.Authoritative)
	callTypeRes := validate.CallType(entry.CallType, highlighted, validate.Authoritative)
	state := validate.State{
		Date:         dateRes.Status,
		CallReceived: validate.Clock(entry.CallReceived, validate.Authoritative),
		Arrival:      validate.Clock(entry.Arrival, validate.Authoritative),
		Completion:   validate.Clock(entry.Completion, validate.Authoritative),
		CallType:     callTypeRes.Status,
	}
	if !state.Passed() {
		return Outcome{Status: Rejected, Fields: state, Canonical: callTypeRes.Canonical}
	}
	if callTypeRes.Canonical != "" {
		entry.CallType = callTypeRes.Canonical
	}

	monthlyPath := dataset.MonthlyPath(p.cfg.ReportsDir, p.cfg.Year, dateRes.Month)
	monthlyRows, err := dataset.LoadMonthly(monthlyPath)
	if err != nil {
		return Outcome{Status: Failed, Fields: state, Err: fmt.Errorf("failed to load monthly table: %w", err)}
	}
	masterRows, err := dataset.LoadMaster(p.cfg.MasterPath)
	if err == dataset.ErrNotFound {
		return Outcome{Status: MasterMissing, Fields: state}
	}
	if err != nil {
		return Outcome{Status: Failed, Fields: state, Err: fmt.Errorf("failed to load master table: %w", err)}
	}

	// Call to arrival is never eligible for the over-24 correction: the
	// interval up to arrival is assumed to fall on the same day.
	toArrive, err := timemath.Between(entry.CallReceived, entry.Arrival, false)
	if err != nil {
		return Outcome{Status: Failed, Fields: state, Err: err}
	}
	callToComplete, err := timemath.Between(entry.CallReceived, entry.Completion, entry.OverDay)
	if err != nil {
		return Outcome{Status: Failed, Fields: state, Err: err}
	}
	arriveToComplete, err := timemath.Between(entry.Arrival, entry.Completion, entry.OverDay)
	if err != nil {
		return Outcome{Status: Failed, Fields: state, Err: err}
	}

	rec := model.Record{
		Date:                 dateRes.FormatDate(p.cfg.Year),
		Entered:              now.Format("2006-01-02 15:04"),
		Shift:                entry.Shift,
		CallReceived:         timemath.Colonize(strings.TrimSpace(entry.CallReceived)),
		Arrival:              timemath.Colonize(strings.TrimSpace(entry.Arrival)),
		Completion:           timemath.Colonize(strings.TrimSpace(entry.Completion)),
		CallType:             strings.TrimSpace(entry.CallType),
		PhysicalIntervention: model.YesNo(entry.PhysicalIntervention),
		RestraintUsed:        model.YesNo(entry.RestraintUsed),
		PoliceInvolved:       model.YesNo(entry.PoliceInvolved),
		RequestedBy:          strings.TrimSpace(entry.RequestedBy),
		Contact:              strings.TrimSpace(entry.Contact),
		Notes:                entry.Notes,
		ToArrive:             toArrive.Human(),
		CallToComplete:       callToComplete.Human(),
		ArriveToComplete:     arriveToComplete.Human(),
		ToArriveMins:         toArrive.Minutes(),
		CallToCompleteMins:   callToComplete.Minutes(),
		ArriveToCompleteMins: arriveToComplete.Minutes(),
	}

	monthlyRows = append(monthlyRows, rec.Row())
	masterRows = append(masterRows, rec.Row())
	if err := dataset.SaveMonthly(monthlyPath, monthlyRows); err != nil {
		return Outcome{Status: Failed, Fields: state, Err: fmt.Errorf("failed to save monthly table: %w", err)}
	}
	if err := dataset.SaveMaster(p.cfg.MasterPath, p.cfg.BackupPath, masterRows); err != nil {
		return Outcome{Status: Failed, Fields: state, Err: fmt.Errorf("failed to save master table: %w", err)}
	}

	// The text log and its retention trim are non-essential side channels:
	// their failure never blocks the commit.
	if err := report.Write(p.cfg.LogsDir, report.Fields{
		Date:                 rec.Date,
		Shift:                rec.Shift,
		CallReceived:         rec.CallReceived,
		Arrival:              rec.Arrival,
		Completion:           rec.Completion,
		CallType:             rec.CallType,
		PhysicalIntervention: rec.PhysicalIntervention,
		RestraintUsed:        rec.RestraintUsed,
		PoliceInvolved:       rec.PoliceInvolved,
		RequestedBy:          rec.RequestedBy,
		Contact:              rec.Contact,
		Notes:                rec.Notes,
	}, now); err != nil {
		_ = err
	}
	if err := report.Trim(p.cfg.LogsDir, p.cfg.MaxLogFiles, p.cfg.LogTrimMargin); err != nil {
		_ = err
	}

	// A submission that originated from a loaded draft retires that draft.
	// Without an opened draft this removes nothing.
	if p.drafts != nil && p.drafts.Opened() {
		if err := p.drafts.RemoveOpened(); err != nil {
			_ = err
		}
	}

	return Outcome{Status: Committed, Fields: state, Record: rec}
}
