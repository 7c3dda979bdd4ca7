package handler

import (
	"errors"
	"image"
	_ "image/jpeg" // register decoders for uploaded label photos
	_ "image/png"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/apierror"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/qr"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/service"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// maxUploadBytes caps uploaded label images at 8 MiB.
const maxUploadBytes = 8 << 20

type ScanHandler struct{ svc service.ScanService }

func NewScanHandler(svc service.ScanService) *ScanHandler {
	return &ScanHandler{svc: svc}
}

// DecodeImage accepts a multipart "image" file, decodes the QR code in it,
// and resolves the payload against the catalog.
func (h *ScanHandler) DecodeImage(c *gin.Context) {
	file, _, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("missing image upload"))
		return
	}
	defer file.Close()

	img, _, err := image.Decode(http.MaxBytesReader(c.Writer, file, maxUploadBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("unreadable image: "+err.Error()))
		return
	}

	resp, err := h.svc.DecodeImage(img)
	if err != nil {
		c.JSON(scanErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResolvePayload accepts payload text already decoded client-side (live
// camera readers run in the browser) and resolves it against the catalog.
func (h *ScanHandler) ResolvePayload(c *gin.Context) {
	var req dto.ResolvePayloadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ResolvePayload(req.Payload)
	if err != nil {
		c.JSON(scanErrorStatus(err), apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ScanHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.History())
}

func (h *ScanHandler) ClearHistory(c *gin.Context) {
	h.svc.ClearHistory()
	c.Status(http.StatusNoContent)
}

func scanErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, qr.ErrInvalidPayload), errors.Is(err, service.ErrNoCodeInImage):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
