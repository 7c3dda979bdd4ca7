package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

func testProduct(breakdown model.StockBreakdown) *model.Product {
	return &model.Product{
		ID:             "1",
		Sku:            "AST-0001",
		Name:           "Hero Acrylic Stand",
		StockBreakdown: breakdown,
		CurrentStock:   breakdown.Total(),
		Version:        1,
	}
}

func TestApplyStockOut(t *testing.T) {
	p := testProduct(model.StockBreakdown{New: 10})
	mv := &model.StockMovement{
		ProductID: "1", Type: model.MovementOut, Quantity: 3,
		Condition: model.ConditionNew, Reason: model.ReasonSale, CreatedBy: "staff",
	}
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, Apply(p, mv, now))

	assert.Equal(t, 7, p.StockBreakdown.New)
	assert.Equal(t, 7, p.CurrentStock)
	assert.Equal(t, now, p.UpdatedAt)
	assert.Equal(t, "staff", p.UpdatedBy)
	assert.Equal(t, int64(2), p.Version)

	// Movement snapshot is stamped at transaction time
	assert.Equal(t, "Hero Acrylic Stand", mv.ProductName)
	assert.Equal(t, "AST-0001", mv.ProductSku)
	assert.Equal(t, now, mv.CreatedAt)
}

func TestApplyStockIn(t *testing.T) {
	p := testProduct(model.StockBreakdown{New: 2, Used: 1})
	mv := &model.StockMovement{
		ProductID: "1", Type: model.MovementIn, Quantity: 5,
		Condition: model.ConditionUsed, Reason: model.ReasonPurchase,
	}
	require.NoError(t, Apply(p, mv, time.Now()))

	assert.Equal(t, 6, p.StockBreakdown.Used)
	assert.Equal(t, 2, p.StockBreakdown.New)
	assert.Equal(t, 8, p.CurrentStock)
}

func TestApplyInsufficientStock(t *testing.T) {
	p := testProduct(model.StockBreakdown{New: 3})
	mv := &model.StockMovement{
		ProductID: "1", Type: model.MovementOut, Quantity: 5,
		Condition: model.ConditionNew, Reason: model.ReasonSale,
	}
	err := Apply(p, mv, time.Now())

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 3, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)
	assert.Equal(t, model.ConditionNew, insufficient.Condition)
	assert.Contains(t, err.Error(), "3 available")

	// Rejection leaves the product untouched
	assert.Equal(t, 3, p.StockBreakdown.New)
	assert.Equal(t, 3, p.CurrentStock)
	assert.Equal(t, int64(1), p.Version)
}

func TestApplyExactDrainToZero(t *testing.T) {
	p := testProduct(model.StockBreakdown{Used: 4})
	mv := &model.StockMovement{
		ProductID: "1", Type: model.MovementOut, Quantity: 4,
		Condition: model.ConditionUsed, Reason: model.ReasonDamage,
	}
	require.NoError(t, Apply(p, mv, time.Now()))
	assert.Equal(t, 0, p.StockBreakdown.Used)
	assert.Equal(t, 0, p.CurrentStock)

	// One more unit is rejected
	err := Apply(p, &model.StockMovement{
		ProductID: "1", Type: model.MovementOut, Quantity: 1,
		Condition: model.ConditionUsed, Reason: model.ReasonDamage,
	}, time.Now())
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, insufficient.Available)
}

func TestApplyInvalidQuantity(t *testing.T) {
	for _, qty := range []int{0, -3} {
		p := testProduct(model.StockBreakdown{New: 10})
		err := Apply(p, &model.StockMovement{
			ProductID: "1", Type: model.MovementIn, Quantity: qty,
			Condition: model.ConditionNew, Reason: model.ReasonPurchase,
		}, time.Now())
		require.ErrorIs(t, err, ErrInvalidQuantity)
		assert.Equal(t, 10, p.CurrentStock)
	}
}

func TestApplyUnknownCondition(t *testing.T) {
	p := testProduct(model.StockBreakdown{New: 10})
	err := Apply(p, &model.StockMovement{
		ProductID: "1", Type: model.MovementIn, Quantity: 1,
		Condition: "mint", Reason: model.ReasonPurchase,
	}, time.Now())
	require.ErrorIs(t, err, ErrUnknownCondition)
}

func TestApplyReasonEnforcedPerDirection(t *testing.T) {
	// "sale" is a stock-out reason; stock-in rejects it.
	p := testProduct(model.StockBreakdown{New: 10})
	err := Apply(p, &model.StockMovement{
		ProductID: "1", Type: model.MovementIn, Quantity: 1,
		Condition: model.ConditionNew, Reason: model.ReasonSale,
	}, time.Now())
	require.ErrorIs(t, err, ErrInvalidReason)
	assert.Equal(t, 10, p.CurrentStock)

	assert.True(t, ValidReason(model.MovementOut, model.ReasonSale))
	assert.False(t, ValidReason(model.MovementIn, "restock-party"))
}

func TestApplyUnknownMovementType(t *testing.T) {
	p := testProduct(model.StockBreakdown{New: 10})
	err := Apply(p, &model.StockMovement{
		ProductID: "1", Type: "adjust", Quantity: 1,
		Condition: model.ConditionNew, Reason: model.ReasonOther,
	}, time.Now())
	require.Error(t, err)
}

// The breakdown-sums-to-total invariant holds after any accepted sequence.
func TestInvariantAcrossSequence(t *testing.T) {
	p := testProduct(model.StockBreakdown{New: 10, Used: 5, Damaged: 2})
	moves := []*model.StockMovement{
		{Type: model.MovementOut, Quantity: 4, Condition: model.ConditionNew, Reason: model.ReasonSale},
		{Type: model.MovementIn, Quantity: 7, Condition: model.ConditionDamaged, Reason: model.ReasonReturn},
		{Type: model.MovementOut, Quantity: 5, Condition: model.ConditionUsed, Reason: model.ReasonSample},
		{Type: model.MovementOut, Quantity: 9, Condition: model.ConditionDamaged, Reason: model.ReasonDamage},
		{Type: model.MovementIn, Quantity: 1, Condition: model.ConditionNew, Reason: model.ReasonPurchase},
	}
	for _, mv := range moves {
		mv.ProductID = "1"
		require.NoError(t, Apply(p, mv, time.Now()))

		assert.Equal(t, p.StockBreakdown.Total(), p.CurrentStock)
		assert.GreaterOrEqual(t, p.StockBreakdown.New, 0)
		assert.GreaterOrEqual(t, p.StockBreakdown.Used, 0)
		assert.GreaterOrEqual(t, p.StockBreakdown.Damaged, 0)
	}
	assert.Equal(t, model.StockBreakdown{New: 7, Used: 0, Damaged: 0}, p.StockBreakdown)
}
