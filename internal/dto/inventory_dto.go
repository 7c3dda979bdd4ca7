package dto

import "github.com/hagisho0907/goodsstockmanage-sub000/internal/model"

// MovementRequest submits one stock-in/stock-out transaction. Quantity is
// always positive; Type carries the direction.
type MovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type"       validate:"required,oneof=in out"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
	Condition string `json:"condition"  validate:"required,oneof=new used damaged"`
	Reason    string `json:"reason"     validate:"required"`
	Notes     string `json:"notes"      validate:"max=500"`
}

// BatchMovementRequest submits several movements at once (multi-item scan
// session commit). Items are applied independently — there is no rollback.
type BatchMovementRequest struct {
	Items []MovementRequest `json:"items" validate:"required,min=1,max=100,dive"`
}

// MovementResponse returns the committed movement and the product state it
// produced.
type MovementResponse struct {
	Product  model.Product       `json:"product"`
	Movement model.StockMovement `json:"movement"`
}

// BatchItemError reports one failed item inside a partial-success batch.
type BatchItemError struct {
	Index     int    `json:"index"`
	ProductID string `json:"product_id,omitempty"`
	Detail    string `json:"detail"`
}

// BatchMovementResponse reports a partial-success batch: committed items and
// per-item failures, in submission order.
type BatchMovementResponse struct {
	Committed []MovementResponse `json:"committed"`
	Errors    []BatchItemError   `json:"errors"`
}
