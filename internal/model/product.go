package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Condition buckets partition a product's stock.
const (
	ConditionNew     = "new"
	ConditionUsed    = "used"
	ConditionDamaged = "damaged"
)

// StockBreakdown partitions a product's stock by condition.
// Each bucket is a non-negative count; their sum must equal Product.CurrentStock.
type StockBreakdown struct {
	New     int `json:"new"`
	Used    int `json:"used"`
	Damaged int `json:"damaged"`
}

// Total returns the sum of all condition buckets.
func (b StockBreakdown) Total() int { return b.New + b.Used + b.Damaged }

// Bucket returns the count for the given condition; ok is false for an
// unknown condition name.
func (b StockBreakdown) Bucket(condition string) (int, bool) {
	switch condition {
	case ConditionNew:
		return b.New, true
	case ConditionUsed:
		return b.Used, true
	case ConditionDamaged:
		return b.Damaged, true
	}
	return 0, false
}

// SetBucket overwrites the count for the given condition.
func (b *StockBreakdown) SetBucket(condition string, n int) {
	switch condition {
	case ConditionNew:
		b.New = n
	case ConditionUsed:
		b.Used = n
	case ConditionDamaged:
		b.Damaged = n
	}
}

// IPInfo carries the licensing and sales-window metadata attached to
// IP-merchandise products. All fields are optional.
type IPInfo struct {
	LicensorID       string     `json:"licensor_id,omitempty"`
	LicensorName     string     `json:"licensor_name,omitempty"`
	LicenseeID       string     `json:"licensee_id,omitempty"`
	LicenseeName     string     `json:"licensee_name,omitempty"`
	ManufacturerID   string     `json:"manufacturer_id,omitempty"`
	ManufacturerName string     `json:"manufacturer_name,omitempty"`
	SalesStartDate   *time.Time `json:"sales_start_date,omitempty"`
	SalesEndDate     *time.Time `json:"sales_end_date,omitempty"`
}

// Product is a catalog entry. CurrentStock is derived: after every mutation it
// must equal StockBreakdown.Total(). Mutations go through the ledger (stock
// movements) or the product edit path — products are never deleted, only
// deactivated.
type Product struct {
	ID                string          `json:"id"`
	Sku               string          `json:"sku"`
	Name              string          `json:"name"`
	Description       string          `json:"description,omitempty"`
	CategoryID        string          `json:"category_id"`
	CategoryName      string          `json:"category_name"`
	StorageLocationID string          `json:"storage_location_id"`
	StorageLocation   string          `json:"storage_location"`
	Price             decimal.Decimal `json:"price"`
	StockBreakdown    StockBreakdown  `json:"stock_breakdown"`
	CurrentStock      int             `json:"current_stock"`
	MinStock          int             `json:"min_stock"`
	IPInfo            *IPInfo         `json:"ip_info,omitempty"`
	Active            bool            `json:"active"`

	// Version is bumped on every committed write; writers that pass a stale
	// version are rejected (optimistic concurrency over the shared store).
	Version int64 `json:"version"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}
