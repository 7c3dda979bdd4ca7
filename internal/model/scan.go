package model

import "time"

// ScanResult is the decoded QR payload. Only Type ("product") and ID are
// required; the rest is optional enrichment carried by richer labels.
// Unknown fields in the payload JSON are ignored (forward compatible).
// Not persisted — used only to drive catalog lookup.
type ScanResult struct {
	ID         string  `json:"id,omitempty"`
	Type       string  `json:"type,omitempty"`
	Name       string  `json:"name,omitempty"`
	Sku        string  `json:"sku,omitempty"`
	Jan        string  `json:"jan,omitempty"` // JAN barcode, interchangeable with Sku
	Category   string  `json:"category,omitempty"`
	Location   string  `json:"location,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Quantity   int     `json:"quantity,omitempty"`
	ExpiryDate string  `json:"expiryDate,omitempty"`
	Custom     string  `json:"custom,omitempty"`
}

// ScanHistoryEntry is one successful scan, kept in a bounded most-recent-first
// log independent of persisted movements.
type ScanHistoryEntry struct {
	Timestamp time.Time  `json:"timestamp"`
	Data      ScanResult `json:"data"`
	Product   *Product   `json:"product,omitempty"`
}
