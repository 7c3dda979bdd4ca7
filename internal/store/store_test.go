package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/ledger"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

var storeNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return New(WithClock(func() time.Time { return storeNow }))
}

func newProduct(sku string, stock model.StockBreakdown) model.Product {
	return model.Product{
		Sku:            sku,
		Name:           "Acrylic Stand",
		CategoryName:   "Acrylic Stands",
		Price:          decimal.NewFromInt(1650),
		MinStock:       5,
		StockBreakdown: stock,
		CreatedBy:      "admin",
	}
}

func TestCreateProductAssignsIDAndStamps(t *testing.T) {
	s := newTestStore()

	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 10}))
	require.NoError(t, err)

	assert.Equal(t, "1", p.ID)
	assert.Equal(t, int64(1), p.Version)
	assert.Equal(t, 10, p.CurrentStock)
	assert.True(t, p.Active)
	assert.Equal(t, storeNow, p.CreatedAt)
	assert.Equal(t, "admin", p.UpdatedBy)

	got, ok := s.Product("1")
	require.True(t, ok)
	assert.Equal(t, p, got)
}

func TestCreateProductRejectsDuplicateSku(t *testing.T) {
	s := newTestStore()
	_, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{}))
	require.NoError(t, err)

	_, err = s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{}))
	require.ErrorIs(t, err, ErrDuplicateSku)
}

func TestProductBySku(t *testing.T) {
	s := newTestStore()
	created, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 2}))
	require.NoError(t, err)

	got, ok := s.ProductBySku("ACS-0001")
	require.True(t, ok)
	assert.Equal(t, created.ID, got.ID)

	_, ok = s.ProductBySku("missing")
	assert.False(t, ok)
}

func TestUpdateProductVersionConflict(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 3}))
	require.NoError(t, err)

	p.Name = "Acrylic Stand (Renewal)"
	updated, err := s.UpdateProduct(p)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Version)

	// A second editor still holding version 1 loses.
	p.Name = "Stale Edit"
	_, err = s.UpdateProduct(p)
	require.ErrorIs(t, err, ErrVersionConflict)

	got, _ := s.Product(p.ID)
	assert.Equal(t, "Acrylic Stand (Renewal)", got.Name)
}

func TestUpdateProductCannotTouchStock(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 10}))
	require.NoError(t, err)

	p.StockBreakdown = model.StockBreakdown{New: 999}
	p.CurrentStock = 999
	updated, err := s.UpdateProduct(p)
	require.NoError(t, err)

	assert.Equal(t, 10, updated.CurrentStock)
	assert.Equal(t, 10, updated.StockBreakdown.New)
}

func TestDeactivateAndReactivateProduct(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{}))
	require.NoError(t, err)

	require.NoError(t, s.DeactivateProduct(p.ID, "manager"))
	got, _ := s.Product(p.ID)
	assert.False(t, got.Active)
	assert.Equal(t, "manager", got.UpdatedBy)

	require.NoError(t, s.ReactivateProduct(p.ID, "admin"))
	got, _ = s.Product(p.ID)
	assert.True(t, got.Active)

	assert.ErrorIs(t, s.DeactivateProduct("missing", "admin"), ErrProductNotFound)
}

func TestApplyMovementCommitsProductAndLog(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 10}))
	require.NoError(t, err)

	updated, mv, err := s.ApplyMovement(model.StockMovement{
		ProductID: p.ID,
		Type:      model.MovementOut,
		Condition: model.ConditionNew,
		Quantity:  3,
		Reason:    model.ReasonSale,
		CreatedBy: "staff",
	})
	require.NoError(t, err)

	assert.Equal(t, 7, updated.StockBreakdown.New)
	assert.Equal(t, 7, updated.CurrentStock)
	assert.NotEqual(t, "", mv.ID.String())
	assert.Equal(t, "ACS-0001", mv.ProductSku)
	assert.Equal(t, storeNow, mv.CreatedAt)

	log := s.MovementsForProduct(p.ID)
	require.Len(t, log, 1)
	assert.Equal(t, mv.ID, log[0].ID)
}

func TestApplyMovementFailureLeavesStateUntouched(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 2}))
	require.NoError(t, err)

	_, _, err = s.ApplyMovement(model.StockMovement{
		ProductID: p.ID,
		Type:      model.MovementOut,
		Condition: model.ConditionNew,
		Quantity:  5,
		Reason:    model.ReasonSale,
		CreatedBy: "staff",
	})
	var insufficient *ledger.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 2, insufficient.Available)
	assert.Equal(t, 5, insufficient.Requested)

	got, _ := s.Product(p.ID)
	assert.Equal(t, 2, got.StockBreakdown.New)
	assert.Equal(t, int64(1), got.Version)
	assert.Empty(t, s.Movements())
}

func TestApplyMovementUnknownProduct(t *testing.T) {
	s := newTestStore()
	_, _, err := s.ApplyMovement(model.StockMovement{
		ProductID: "missing",
		Type:      model.MovementIn,
		Condition: model.ConditionNew,
		Quantity:  1,
		Reason:    model.ReasonPurchase,
	})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestApplyMovementsPartialSuccess(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 4}))
	require.NoError(t, err)

	results := s.ApplyMovements([]model.StockMovement{
		{ProductID: p.ID, Type: model.MovementOut, Condition: model.ConditionNew, Quantity: 3, Reason: model.ReasonSale, CreatedBy: "staff"},
		{ProductID: p.ID, Type: model.MovementOut, Condition: model.ConditionNew, Quantity: 3, Reason: model.ReasonSale, CreatedBy: "staff"},
		{ProductID: p.ID, Type: model.MovementIn, Condition: model.ConditionUsed, Quantity: 2, Reason: model.ReasonReturn, CreatedBy: "staff"},
	})
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	var insufficient *ledger.InsufficientStockError
	assert.ErrorAs(t, results[1].Err, &insufficient)
	assert.NoError(t, results[2].Err)

	// Items before and after the failed one are committed.
	got, _ := s.Product(p.ID)
	assert.Equal(t, 1, got.StockBreakdown.New)
	assert.Equal(t, 2, got.StockBreakdown.Used)
	assert.Equal(t, 3, got.CurrentStock)
	assert.Len(t, s.Movements(), 2)
}

func TestMovementsNewestFirst(t *testing.T) {
	s := newTestStore()
	p, err := s.CreateProduct(newProduct("ACS-0001", model.StockBreakdown{New: 10}))
	require.NoError(t, err)

	for _, qty := range []int{1, 2, 3} {
		_, _, err := s.ApplyMovement(model.StockMovement{
			ProductID: p.ID,
			Type:      model.MovementOut,
			Condition: model.ConditionNew,
			Quantity:  qty,
			Reason:    model.ReasonSale,
			CreatedBy: "staff",
		})
		require.NoError(t, err)
	}

	log := s.Movements()
	require.Len(t, log, 3)
	assert.Equal(t, 3, log[0].Quantity)
	assert.Equal(t, 1, log[2].Quantity)
}

func TestProductReturnsDefensiveCopy(t *testing.T) {
	s := newTestStore()
	end := storeNow.AddDate(0, 1, 0)
	p := newProduct("ACS-0001", model.StockBreakdown{New: 1})
	p.IPInfo = &model.IPInfo{LicensorName: "Sample Licensor", SalesEndDate: &end}
	created, err := s.CreateProduct(p)
	require.NoError(t, err)

	got, _ := s.Product(created.ID)
	got.Name = "mutated"
	*got.IPInfo.SalesEndDate = got.IPInfo.SalesEndDate.AddDate(1, 0, 0)

	fresh, _ := s.Product(created.ID)
	assert.Equal(t, "Acrylic Stand", fresh.Name)
	assert.Equal(t, end, *fresh.IPInfo.SalesEndDate)
}
