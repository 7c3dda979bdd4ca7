// Package scanner drives the QR scan pipeline: a bounded polling loop over a
// frame source, decode/parse/resolve of each frame, and a small most-recent-
// first log of successful scans.
package scanner

import (
	"sync"
	"time"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

// DefaultHistoryLimit caps the scan history at the ten most recent entries.
const DefaultHistoryLimit = 10

// History is a bounded most-recent-first log of successful scans. It is
// independent of the persisted movement log and does not survive a restart.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []model.ScanHistoryEntry
}

// NewHistory returns a history capped at limit entries (DefaultHistoryLimit
// when limit is not positive).
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push prepends an entry, evicting the oldest once the cap is exceeded.
func (h *History) Push(entry model.ScanHistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append([]model.ScanHistoryEntry{entry}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// Entries returns a copy of the log, newest first.
func (h *History) Entries() []model.ScanHistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]model.ScanHistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Clear empties the log.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = nil
}

// Len returns the current number of entries.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// record is the canonical "successful scan" append used by the session and
// the scan service.
func (h *History) record(res model.ScanResult, p *model.Product, now time.Time) {
	h.Push(model.ScanHistoryEntry{Timestamp: now, Data: res, Product: p})
}
