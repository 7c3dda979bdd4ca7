package service

import (
	"time"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/alert"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/infra"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// ReportService aggregates catalog and ledger state for the reports page and
// exports the movement log as a PDF.
type ReportService interface {
	Summary() *dto.StockSummaryResponse
	MovementReportPDF() (string, error)
}

type reportService struct {
	st          *store.Store
	storagePath string
	now         func() time.Time
}

func NewReportService(st *store.Store, storagePath string) ReportService {
	return &reportService{st: st, storagePath: storagePath, now: time.Now}
}

func (s *reportService) Summary() *dto.StockSummaryResponse {
	products := s.st.Products()
	movements := s.st.Movements()
	now := s.now()

	summary := &dto.StockSummaryResponse{TotalProducts: len(products)}
	var active []model.Product
	for _, p := range products {
		if !p.Active {
			continue
		}
		active = append(active, p)
		summary.ActiveProducts++
		summary.TotalStock += p.CurrentStock
		summary.NewStock += p.StockBreakdown.New
		summary.UsedStock += p.StockBreakdown.Used
		summary.DamagedStock += p.StockBreakdown.Damaged
		switch {
		case p.CurrentStock == 0:
			summary.OutOfStock++
		case p.CurrentStock <= alert.LowStockWarning:
			summary.LowStockCount++
		}
	}
	for _, mv := range movements {
		if mv.Type == model.MovementIn {
			summary.MovementsIn++
		} else {
			summary.MovementsOut++
		}
	}
	summary.AlertCount = len(alert.Derive(active, now))
	return summary
}

func (s *reportService) MovementReportPDF() (string, error) {
	return infra.GenerateMovementReportPDF(s.st.Movements(), s.storagePath, s.now())
}
