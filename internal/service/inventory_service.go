package service

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/alert"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// AlertNotifier forwards freshly derived alerts to the async digest pipeline.
// The worker dispatcher implements it; a nil notifier disables digests.
type AlertNotifier interface {
	EnqueueAlertDigest(alerts []model.Alert) error
}

// InventoryService owns the ledger-facing operations: applying movements,
// listing the movement log, and deriving alerts from catalog state.
type InventoryService interface {
	ApplyMovement(req dto.MovementRequest, actor string) (*dto.MovementResponse, error)
	ApplyBatch(req dto.BatchMovementRequest, actor string) *dto.BatchMovementResponse
	ListMovements(productID string) []model.StockMovement
	Alerts() []model.Alert
}

type inventoryService struct {
	st       *store.Store
	notifier AlertNotifier
	now      func() time.Time
}

func NewInventoryService(st *store.Store, notifier AlertNotifier) InventoryService {
	return &inventoryService{st: st, notifier: notifier, now: time.Now}
}

func (s *inventoryService) ApplyMovement(req dto.MovementRequest, actor string) (*dto.MovementResponse, error) {
	product, movement, err := s.st.ApplyMovement(model.StockMovement{
		ProductID: req.ProductID,
		Type:      req.Type,
		Quantity:  req.Quantity,
		Condition: req.Condition,
		Reason:    req.Reason,
		Notes:     req.Notes,
		CreatedBy: actor,
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("product_id", product.ID).
		Str("type", movement.Type).
		Int("quantity", movement.Quantity).
		Str("condition", movement.Condition).
		Int("current_stock", product.CurrentStock).
		Msg("stock movement committed")

	s.notifyIfLow(&product)
	return &dto.MovementResponse{Product: product, Movement: movement}, nil
}

func (s *inventoryService) ApplyBatch(req dto.BatchMovementRequest, actor string) *dto.BatchMovementResponse {
	movements := make([]model.StockMovement, 0, len(req.Items))
	for _, item := range req.Items {
		movements = append(movements, model.StockMovement{
			ProductID: item.ProductID,
			Type:      item.Type,
			Quantity:  item.Quantity,
			Condition: item.Condition,
			Reason:    item.Reason,
			Notes:     item.Notes,
			CreatedBy: actor,
		})
	}

	resp := &dto.BatchMovementResponse{
		Committed: []dto.MovementResponse{},
		Errors:    []dto.BatchItemError{},
	}
	for _, r := range s.st.ApplyMovements(movements) {
		if r.Err != nil {
			log.Warn().
				Int("index", r.Index).
				Str("product_id", movements[r.Index].ProductID).
				Err(r.Err).
				Msg("batch movement item rejected")
			resp.Errors = append(resp.Errors, dto.BatchItemError{
				Index:     r.Index,
				ProductID: movements[r.Index].ProductID,
				Detail:    r.Err.Error(),
			})
			continue
		}
		resp.Committed = append(resp.Committed, dto.MovementResponse{Product: r.Product, Movement: r.Movement})
		s.notifyIfLow(&r.Product)
	}
	return resp
}

// notifyIfLow enqueues an alert digest when a movement leaves the product at
// or below the warning threshold. Digest failures are logged, never surfaced
// into the movement response.
func (s *inventoryService) notifyIfLow(p *model.Product) {
	if s.notifier == nil || p.CurrentStock > alert.LowStockWarning {
		return
	}
	alerts := alert.Derive([]model.Product{*p}, s.now())
	if len(alerts) == 0 {
		return
	}
	if err := s.notifier.EnqueueAlertDigest(alerts); err != nil {
		log.Warn().Err(err).Str("product_id", p.ID).Msg("alert digest enqueue failed")
	}
}

func (s *inventoryService) ListMovements(productID string) []model.StockMovement {
	if productID != "" {
		return s.st.MovementsForProduct(productID)
	}
	return s.st.Movements()
}

// Alerts recomputes the alert list from the active catalog. Inactive products
// no longer page anyone.
func (s *inventoryService) Alerts() []model.Alert {
	products := s.st.Products()
	active := products[:0]
	for _, p := range products {
		if p.Active {
			active = append(active, p)
		}
	}
	return alert.Derive(active, s.now())
}
