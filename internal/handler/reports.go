package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/apierror"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/service"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

func (h *ReportsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Summary())
}

// MovementsPDF renders the movement log to a PDF and serves it as a download.
func (h *ReportsHandler) MovementsPDF(c *gin.Context) {
	path, err := h.svc.MovementReportPDF()
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to generate report"))
		return
	}
	c.FileAttachment(path, "movements.pdf")
}
