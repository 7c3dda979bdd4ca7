package model

import "time"

// Alert types and severities. Alerts are derived from catalog state on every
// read; they are never stored or diffed against a previous set.
const (
	AlertLowStock = "low_stock"
	AlertExpiring = "expiring"
	AlertExpired  = "expired"

	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Alert is a derived warning about low/zero stock or a sales-window expiry.
// ID is deterministic (type + product id) so recomputation is idempotent.
// CreatedAt is the generation time, not the time of the underlying event.
type Alert struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Message   string    `json:"message"`
	ProductID string    `json:"product_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
