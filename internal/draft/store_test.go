package draft

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incidententry/internal/model"
)

func testEntry(date string) model.Entry {
	e := model.NewEntry()
	e.Date = date
	e.CallReceived = "0800"
	e.CallType = "Alarm"
	return e
}

func TestLoadMissingWorkbookIsEmpty(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "drafts.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Opened())
}

func TestSaveRejectsBlankEntryBeforeIdentifier(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "drafts.xlsx"))
	require.NoError(t, err)

	err = s.Save(model.NewEntry(), "ignored")
	assert.ErrorIs(t, err, ErrNothingToSave)
	assert.Equal(t, 0, s.Len())
}

func TestSaveRequiresIdentifier(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "drafts.xlsx"))
	require.NoError(t, err)

	err = s.Save(testEntry("03/05"), "   ")
	assert.ErrorIs(t, err, ErrNoIdentifier)
	assert.Equal(t, 0, s.Len())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.xlsx")
	s, err := Load(path)
	require.NoError(t, err)

	entry := testEntry("03/05")
	entry.PoliceInvolved = true
	entry.OverDay = true
	entry.Contact = "555-0102"
	require.NoError(t, s.Save(entry, " Smith, J "))

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.Len())
	d := reloaded.List()[0]
	assert.Equal(t, "Smith, J", d.Identifier)
	assert.Equal(t, "03/05", d.Entry.Date)
	assert.Equal(t, "0800", d.Entry.CallReceived)
	assert.Equal(t, "555-0102", d.Entry.Contact)
	assert.True(t, d.Entry.PoliceInvolved)
	assert.True(t, d.Entry.OverDay)
	assert.False(t, d.Entry.RestraintUsed)
}

func TestCapacityEvictsOldestFIFO(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.xlsx")
	s, err := Load(path)
	require.NoError(t, err)

	for i := 1; i <= Capacity+1; i++ {
		require.NoError(t, s.Save(testEntry(fmt.Sprintf("01/%02d", i)), fmt.Sprintf("draft-%d", i)))
	}

	require.Equal(t, Capacity, s.Len())
	assert.Equal(t, "draft-2", s.List()[0].Identifier)
	assert.Equal(t, "draft-11", s.List()[Capacity-1].Identifier)
}

func TestAccessDoesNotResetEvictionOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.xlsx")
	s, err := Load(path)
	require.NoError(t, err)

	for i := 1; i <= Capacity; i++ {
		require.NoError(t, s.Save(testEntry(fmt.Sprintf("01/%02d", i)), fmt.Sprintf("draft-%d", i)))
	}

	// Opening the oldest draft is not an access that protects it: the next
	// save still evicts it (FIFO, not LRU).
	_, err = s.Open(0)
	require.NoError(t, err)
	require.NoError(t, s.Save(testEntry("02/01"), "draft-11"))
	assert.Equal(t, "draft-2", s.List()[0].Identifier)
	// The opened draft was the evicted one, so nothing is open anymore.
	assert.False(t, s.Opened())
}

func TestOpenedPositionSurvivesEviction(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.xlsx")
	s, err := Load(path)
	require.NoError(t, err)

	for i := 1; i <= Capacity; i++ {
		require.NoError(t, s.Save(testEntry(fmt.Sprintf("01/%02d", i)), fmt.Sprintf("draft-%d", i)))
	}

	d, err := s.Open(4)
	require.NoError(t, err)
	require.Equal(t, "draft-5", d.Identifier)

	// An at-capacity save evicts draft-1 and shifts everything left; the
	// remembered position must still point at draft-5.
	require.NoError(t, s.Save(testEntry("02/01"), "draft-11"))
	require.True(t, s.Opened())
	require.NoError(t, s.RemoveOpened())

	for _, d := range s.List() {
		assert.NotEqual(t, "draft-5", d.Identifier)
	}
	assert.Equal(t, Capacity-1, s.Len())
}

func TestOpenThenRemoveOpened(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafts.xlsx")
	s, err := Load(path)
	require.NoError(t, err)
	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Save(testEntry(fmt.Sprintf("01/%02d", i)), fmt.Sprintf("draft-%d", i)))
	}

	d, err := s.Open(1)
	require.NoError(t, err)
	assert.Equal(t, "draft-2", d.Identifier)
	// Loading alone removes nothing.
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Opened())

	require.NoError(t, s.RemoveOpened())
	require.Equal(t, 2, s.Len())
	assert.Equal(t, "draft-1", s.List()[0].Identifier)
	assert.Equal(t, "draft-3", s.List()[1].Identifier)
	assert.False(t, s.Opened())

	// Removal persisted.
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())
}

func TestRemoveOpenedWithoutOpenIsNoop(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "drafts.xlsx"))
	require.NoError(t, err)
	require.NoError(t, s.Save(testEntry("01/01"), "draft-1"))

	require.NoError(t, s.RemoveOpened())
	assert.Equal(t, 1, s.Len())
}

func TestOpenOutOfRange(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "drafts.xlsx"))
	require.NoError(t, err)
	_, err = s.Open(0)
	assert.Error(t, err)
	assert.False(t, s.Opened())
}
