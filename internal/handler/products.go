package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/apierror"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/service"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

type ProductsHandler struct{ svc service.ProductService }

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	return &ProductsHandler{svc: svc}
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(req, actor(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductsHandler) List(c *gin.Context) {
	var filter dto.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, h.svc.List(filter))
}

func (h *ProductsHandler) GetByID(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) GetBySku(c *gin.Context) {
	resp, err := h.svc.GetBySku(c.Param("sku"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Param("id"), req, actor(c))
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, store.ErrProductNotFound):
			status = http.StatusNotFound
		case errors.Is(err, store.ErrVersionConflict):
			status = http.StatusConflict
		}
		c.JSON(status, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductsHandler) Deactivate(c *gin.Context) {
	if err := h.svc.Deactivate(c.Param("id"), actor(c)); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductsHandler) Reactivate(c *gin.Context) {
	if err := h.svc.Reactivate(c.Param("id"), actor(c)); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// QRLabel serves the product's QR label as a PNG download.
func (h *ProductsHandler) QRLabel(c *gin.Context) {
	size, _ := strconv.Atoi(c.DefaultQuery("size", "256"))
	png, err := h.svc.QRLabel(c.Param("id"), size)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("failed to render QR label"))
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
