package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type StockBreakdownInput struct {
	New     int `json:"new"     validate:"min=0"`
	Used    int `json:"used"    validate:"min=0"`
	Damaged int `json:"damaged" validate:"min=0"`
}

type IPInfoInput struct {
	LicensorID     string `json:"licensor_id"     validate:"omitempty"`
	LicenseeID     string `json:"licensee_id"     validate:"omitempty"`
	ManufacturerID string `json:"manufacturer_id" validate:"omitempty"`
	SalesStartDate string `json:"sales_start_date" validate:"omitempty,datetime=2006-01-02"`
	SalesEndDate   string `json:"sales_end_date"   validate:"omitempty,datetime=2006-01-02"`
}

type CreateProductRequest struct {
	Sku               string              `json:"sku"                 validate:"required,min=4,max=32"`
	Name              string              `json:"name"                validate:"required,min=2,max=120"`
	Description       string              `json:"description"`
	CategoryID        string              `json:"category_id"         validate:"required"`
	StorageLocationID string              `json:"storage_location_id" validate:"required"`
	Price             decimal.Decimal     `json:"price"               validate:"required"`
	MinStock          int                 `json:"min_stock"           validate:"min=0"`
	StockBreakdown    StockBreakdownInput `json:"stock_breakdown"`
	IPInfo            *IPInfoInput        `json:"ip_info"`
}

type UpdateProductRequest struct {
	Sku               *string          `json:"sku"                 validate:"omitempty,min=4,max=32"`
	Name              *string          `json:"name"                validate:"omitempty,min=2,max=120"`
	Description       *string          `json:"description"`
	CategoryID        *string          `json:"category_id"`
	StorageLocationID *string          `json:"storage_location_id"`
	Price             *decimal.Decimal `json:"price"`
	MinStock          *int             `json:"min_stock" validate:"omitempty,min=0"`
	IPInfo            *IPInfoInput     `json:"ip_info"`
	// Version must match the version the editor read; a stale edit is rejected.
	Version int64 `json:"version" validate:"required,min=1"`
}

// ─── Filter ──────────────────────────────────────────────────────────────────

type ProductFilter struct {
	Name     string `form:"name"`
	Category string `form:"category"`
	Active   string `form:"active"` // "false" = inactive only, "all" = everything, default active only
}
