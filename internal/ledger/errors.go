package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity rejects non-positive movement quantities before any
	// mutation happens.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrUnknownCondition rejects movements against a condition bucket that
	// does not exist.
	ErrUnknownCondition = errors.New("unknown stock condition")

	// ErrInvalidReason rejects movement reasons outside the accepted set for
	// the movement direction.
	ErrInvalidReason = errors.New("invalid movement reason")
)

// InsufficientStockError rejects a stock-out that exceeds the available amount
// in the targeted condition bucket. It reports exactly which product, which
// bucket, and how much was available, so the caller can surface an actionable
// message instead of a generic failure.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Condition   string
	Available   int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: %s bucket has %d available, %d requested",
		e.ProductName, e.Condition, e.Available, e.Requested)
}
