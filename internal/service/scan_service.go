package service

import (
	"fmt"
	"image"
	"time"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/qr"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/scanner"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// ErrNoCodeInImage reports an uploaded picture that contains no readable QR
// code — a user-facing condition, not a decode failure.
var ErrNoCodeInImage = fmt.Errorf("no QR code found in image")

// ScanService runs the decode→parse→lookup pipeline for uploaded images and
// pre-decoded payload text, and owns the scan history. It also implements
// scanner.Resolver so a live polling session shares the same resolution path.
type ScanService interface {
	scanner.Resolver

	DecodeImage(img image.Image) (*dto.ScanResolveResponse, error)
	ResolvePayload(raw string) (*dto.ScanResolveResponse, error)
	History() []model.ScanHistoryEntry
	ClearHistory()
}

type scanService struct {
	st      *store.Store
	history *scanner.History
	now     func() time.Time
}

func NewScanService(st *store.Store, history *scanner.History) ScanService {
	return &scanService{st: st, history: history, now: time.Now}
}

// Resolve parses payload text and looks the product up in the catalog.
// It does not touch the scan history — recording is the caller's decision
// (a session records detections, the HTTP endpoints record on success).
func (s *scanService) Resolve(raw string) (model.ScanResult, *model.Product, error) {
	res, err := qr.Parse(raw)
	if err != nil {
		return model.ScanResult{}, nil, err
	}
	p, ok := s.st.Product(res.ID)
	if !ok {
		return model.ScanResult{}, nil, fmt.Errorf("%w: scanned id %q", store.ErrProductNotFound, res.ID)
	}
	return res, &p, nil
}

func (s *scanService) DecodeImage(img image.Image) (*dto.ScanResolveResponse, error) {
	raw, err := qr.Decode(img)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrNoCodeInImage
	}
	return s.ResolvePayload(raw)
}

func (s *scanService) ResolvePayload(raw string) (*dto.ScanResolveResponse, error) {
	res, product, err := s.Resolve(raw)
	if err != nil {
		return nil, err
	}
	s.history.Push(model.ScanHistoryEntry{Timestamp: s.now(), Data: res, Product: product})
	return &dto.ScanResolveResponse{Result: res, Product: product}, nil
}

func (s *scanService) History() []model.ScanHistoryEntry { return s.history.Entries() }
func (s *scanService) ClearHistory()                     { s.history.Clear() }
