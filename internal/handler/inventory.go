package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/apierror"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/ledger"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/service"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// ApplyMovement commits one stock-in/stock-out transaction. Every rejection
// carries a specific message — which product, which bucket, how much was
// available.
func (h *InventoryHandler) ApplyMovement(c *gin.Context) {
	var req dto.MovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ApplyMovement(req, actor(c))
	if err != nil {
		c.JSON(movementErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ApplyBatch commits several movements with partial-success semantics: a 207
// response reports committed items and per-item failures side by side.
func (h *InventoryHandler) ApplyBatch(c *gin.Context) {
	var req dto.BatchMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp := h.svc.ApplyBatch(req, actor(c))
	status := http.StatusCreated
	if len(resp.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resp)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ListMovements(c.Query("product_id")))
}

func (h *InventoryHandler) Alerts(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Alerts())
}

func movementErrorStatus(err error) int {
	var insufficient *ledger.InsufficientStockError
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
