package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement directions.
const (
	MovementIn  = "in"
	MovementOut = "out"
)

// Movement reasons accepted at the ledger boundary, per direction.
const (
	ReasonPurchase  = "purchase"
	ReasonReturn    = "return"
	ReasonSale      = "sale"
	ReasonTransfer  = "transfer"
	ReasonDamage    = "damage"
	ReasonSample    = "sample"
	ReasonInventory = "inventory_check"
	ReasonOther     = "other"
)

// StockMovement records one ledger transaction against one product's one
// condition bucket. Once appended to the log it is never mutated or deleted.
// ProductName and ProductSku are denormalized snapshots taken at transaction
// time, so the history stays readable after a product rename.
type StockMovement struct {
	ID          uuid.UUID `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	ProductSku  string    `json:"product_sku"`
	Type        string    `json:"type"`      // "in" | "out"
	Quantity    int       `json:"quantity"`  // always positive; Type carries the sign
	Condition   string    `json:"condition"` // "new" | "used" | "damaged"
	Reason      string    `json:"reason"`
	Notes       string    `json:"notes,omitempty"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}
