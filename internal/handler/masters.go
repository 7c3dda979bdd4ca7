package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/apierror"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/service"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// MastersHandler serves the five master-data collections through one set of
// routes keyed by :kind.
type MastersHandler struct{ svc service.MasterService }

func NewMastersHandler(svc service.MasterService) *MastersHandler {
	return &MastersHandler{svc: svc}
}

func kindParam(c *gin.Context) (string, bool) {
	kind := c.Param("kind")
	if !store.ValidMasterKind(kind) {
		c.JSON(http.StatusNotFound, apierror.New("unknown master kind "+kind))
		return "", false
	}
	return kind, true
}

func (h *MastersHandler) List(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	records, err := h.svc.List(kind)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list "+kind))
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *MastersHandler) Create(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req dto.MasterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rec, err := h.svc.Create(kind, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *MastersHandler) Update(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	var req dto.MasterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	rec, err := h.svc.Update(kind, c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *MastersHandler) Deactivate(c *gin.Context) {
	kind, ok := kindParam(c)
	if !ok {
		return
	}
	if err := h.svc.Deactivate(kind, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
