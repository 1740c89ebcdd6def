// Package draft keeps a bounded collection of unvalidated partial entries.
package draft

import (
	"errors"
	"fmt"
	"strings"

	"incidententry/internal/dataset"
	"incidententry/internal/model"
)

// Capacity is the maximum number of stored drafts. At capacity the oldest
// draft is evicted before a new one is appended: insertion order decides,
// loading a draft does not refresh it.
const Capacity = 10

// ErrNothingToSave reports a save attempt with every meaningful field blank.
// It is informational, not a failure.
var ErrNothingToSave = errors.New("no data entered")

// ErrNoIdentifier reports a save attempt without an identifier.
var ErrNoIdentifier = errors.New("identifier is empty")

// Store is the in-memory draft collection backed by the drafts workbook.
type Store struct {
	path   string
	drafts []model.Draft
	opened int
}

// Load reads the drafts workbook. A missing workbook yields an empty store.
func Load(path string) (*Store, error) {
	s := &Store{path: path, opened: -1}
	rows, err := dataset.ReadAll(path)
	if err == dataset.ErrNotFound {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load drafts: %w", err)
	}
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		s.drafts = append(s.drafts, model.DraftFromRow(row))
	}
	return s, nil
}

// Len returns the number of stored drafts.
func (s *Store) Len() int {
	return len(s.drafts)
}

// List returns the drafts in storage order, oldest first.
func (s *Store) List() []model.Draft {
	return s.drafts
}

// Save appends the entry under the given identifier and rewrites the
// workbook. A blank entry is rejected before anything else so no identifier
// needs to be asked for it. At capacity the oldest draft is evicted first.
func (s *Store) Save(entry model.Entry, identifier string) error {
	if entry.Blank() {
		return ErrNothingToSave
	}
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return ErrNoIdentifier
	}
	if len(s.drafts) >= Capacity {
		evicted := len(s.drafts) - Capacity + 1
		s.drafts = s.drafts[evicted:]
		// Keep the remembered position pointing at the same draft, or drop
		// it if that draft was evicted.
		if s.opened >= 0 {
			s.opened -= evicted
			if s.opened < 0 {
				s.opened = -1
			}
		}
	}
	s.drafts = append(s.drafts, model.Draft{Identifier: identifier, Entry: entry})
	return s.Persist()
}

// Open returns the draft at position i and remembers it as the currently
// opened draft. The draft itself stays in the store: only a successful
// submission removes it.
func (s *Store) Open(i int) (model.Draft, error) {
	if i < 0 || i >= len(s.drafts) {
		return model.Draft{}, fmt.Errorf("no draft at position %d", i)
	}
	s.opened = i
	return s.drafts[i], nil
}

// Opened reports whether a draft is currently open.
func (s *Store) Opened() bool {
	return s.opened >= 0
}

// RemoveOpened deletes the draft at the remembered position and rewrites the
// workbook. Removal goes by position, not by content, so an edited draft is
// still the one deleted. Without an opened draft this is a no-op.
func (s *Store) RemoveOpened() error {
	if s.opened < 0 {
		return nil
	}
	if s.opened < len(s.drafts) {
		s.drafts = append(s.drafts[:s.opened], s.drafts[s.opened+1:]...)
	}
	s.opened = -1
	return s.Persist()
}

// Persist rewrites the whole drafts workbook. There are no partial updates.
func (s *Store) Persist() error {
	rows := make([][]string, 0, len(s.drafts)+1)
	rows = append(rows, model.DraftHeader)
	for _, d := range s.drafts {
		rows = append(rows, d.Row())
	}
	if err := dataset.WriteAll(s.path, "Drafts", rows, dataset.DraftHints()); err != nil {
		return fmt.Errorf("failed to persist drafts: %w", err)
	}
	return nil
}
