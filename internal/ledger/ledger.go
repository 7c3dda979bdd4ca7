// Package ledger implements the stock-ledger state machine: the rules by which
// a movement (direction, quantity, condition) mutates a product's per-condition
// stock breakdown and aggregate stock. Validation happens before any mutation,
// so a rejected movement leaves the product untouched.
package ledger

import (
	"fmt"
	"time"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

// validReasons lists the accepted movement reasons per direction. The reason
// is enforced here at the ledger boundary, not just in the submitting form.
var validReasons = map[string]map[string]bool{
	model.MovementIn: {
		model.ReasonPurchase:  true,
		model.ReasonReturn:    true,
		model.ReasonTransfer:  true,
		model.ReasonInventory: true,
		model.ReasonOther:     true,
	},
	model.MovementOut: {
		model.ReasonSale:      true,
		model.ReasonTransfer:  true,
		model.ReasonDamage:    true,
		model.ReasonSample:    true,
		model.ReasonInventory: true,
		model.ReasonOther:     true,
	},
}

// ValidReason reports whether reason is accepted for the given movement type.
func ValidReason(movementType, reason string) bool {
	return validReasons[movementType][reason]
}

// Apply commits one movement against a product:
//
//  1. validates quantity, condition and reason (no mutation on failure),
//  2. for stock-out, requires the targeted bucket to cover the quantity,
//  3. applies the signed delta to the bucket, flooring at zero,
//  4. recomputes the aggregate stock from the breakdown,
//  5. stamps update metadata and bumps the product version,
//  6. fills the movement's product snapshot and timestamp.
//
// The zero floor in step 3 cannot fire through this path — the sufficiency
// check in step 2 already rejects any movement that would go negative — but
// it keeps the invariant local: no caller of SetBucket can produce a negative
// bucket.
//
// The caller owns atomicity: p must not be visible to readers until Apply
// returns nil and the caller commits both product and movement together.
func Apply(p *model.Product, mv *model.StockMovement, now time.Time) error {
	if mv.Quantity <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidQuantity, mv.Quantity)
	}
	if mv.Type != model.MovementIn && mv.Type != model.MovementOut {
		return fmt.Errorf("unknown movement type %q", mv.Type)
	}
	available, ok := p.StockBreakdown.Bucket(mv.Condition)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCondition, mv.Condition)
	}
	if !ValidReason(mv.Type, mv.Reason) {
		return fmt.Errorf("%w: %q is not accepted for %q movements", ErrInvalidReason, mv.Reason, mv.Type)
	}

	if mv.Type == model.MovementOut && available < mv.Quantity {
		return &InsufficientStockError{
			ProductID:   p.ID,
			ProductName: p.Name,
			Condition:   mv.Condition,
			Available:   available,
			Requested:   mv.Quantity,
		}
	}

	delta := mv.Quantity
	if mv.Type == model.MovementOut {
		delta = -mv.Quantity
	}
	next := available + delta
	if next < 0 {
		next = 0
	}
	p.StockBreakdown.SetBucket(mv.Condition, next)
	p.CurrentStock = p.StockBreakdown.Total()
	p.UpdatedAt = now
	p.UpdatedBy = mv.CreatedBy
	p.Version++

	mv.ProductID = p.ID
	mv.ProductName = p.Name
	mv.ProductSku = p.Sku
	mv.CreatedAt = now
	return nil
}
