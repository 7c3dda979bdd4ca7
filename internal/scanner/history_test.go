package scanner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

func historyEntry(id string) model.ScanHistoryEntry {
	return model.ScanHistoryEntry{
		Timestamp: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC),
		Data:      model.ScanResult{Type: "product", ID: id},
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	h := NewHistory(10)
	h.Push(historyEntry("1"))
	h.Push(historyEntry("2"))
	h.Push(historyEntry("3"))

	entries := h.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "3", entries[0].Data.ID)
	assert.Equal(t, "2", entries[1].Data.ID)
	assert.Equal(t, "1", entries[2].Data.ID)
}

func TestHistoryEvictsOldestAtCap(t *testing.T) {
	h := NewHistory(10)
	for i := 1; i <= 11; i++ {
		h.Push(historyEntry(fmt.Sprintf("%d", i)))
	}

	entries := h.Entries()
	require.Len(t, entries, 10)
	assert.Equal(t, "11", entries[0].Data.ID)
	assert.Equal(t, "2", entries[9].Data.ID)
	for _, e := range entries {
		assert.NotEqual(t, "1", e.Data.ID)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory(0) // falls back to DefaultHistoryLimit
	h.Push(historyEntry("1"))
	h.Push(historyEntry("2"))
	require.Equal(t, 2, h.Len())

	h.Clear()
	assert.Equal(t, 0, h.Len())
	assert.Empty(t, h.Entries())
}

func TestHistoryEntriesReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Push(historyEntry("1"))

	entries := h.Entries()
	entries[0].Data.ID = "mutated"

	assert.Equal(t, "1", h.Entries()[0].Data.ID)
}
