package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/qr"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// ProductService owns catalog registration and edits. Stock quantities are
// set only at registration; afterwards they change exclusively through the
// inventory service (ledger movements).
type ProductService interface {
	Create(req dto.CreateProductRequest, actor string) (*model.Product, error)
	GetByID(id string) (*model.Product, error)
	GetBySku(sku string) (*model.Product, error)
	List(filter dto.ProductFilter) []model.Product
	Update(id string, req dto.UpdateProductRequest, actor string) (*model.Product, error)
	Deactivate(id, actor string) error
	Reactivate(id, actor string) error
	// QRLabel renders the product's label: the exact payload the scanner
	// parses, as a PNG.
	QRLabel(id string, size int) ([]byte, error)
}

type productService struct {
	st *store.Store
}

func NewProductService(st *store.Store) ProductService {
	return &productService{st: st}
}

func (s *productService) Create(req dto.CreateProductRequest, actor string) (*model.Product, error) {
	category, err := s.st.Master(model.MasterCategory, req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("unknown category %q", req.CategoryID)
	}
	location, err := s.st.Master(model.MasterStorageLocation, req.StorageLocationID)
	if err != nil {
		return nil, fmt.Errorf("unknown storage location %q", req.StorageLocationID)
	}

	ipInfo, err := s.buildIPInfo(req.IPInfo)
	if err != nil {
		return nil, err
	}

	p, err := s.st.CreateProduct(model.Product{
		Sku:               req.Sku,
		Name:              req.Name,
		Description:       req.Description,
		CategoryID:        category.ID,
		CategoryName:      category.Name,
		StorageLocationID: location.ID,
		StorageLocation:   location.Name,
		Price:             req.Price,
		MinStock:          req.MinStock,
		StockBreakdown: model.StockBreakdown{
			New:     req.StockBreakdown.New,
			Used:    req.StockBreakdown.Used,
			Damaged: req.StockBreakdown.Damaged,
		},
		IPInfo:    ipInfo,
		CreatedBy: actor,
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *productService) buildIPInfo(in *dto.IPInfoInput) (*model.IPInfo, error) {
	if in == nil {
		return nil, nil
	}
	info := &model.IPInfo{}
	if in.LicensorID != "" {
		rec, err := s.st.Master(model.MasterLicensor, in.LicensorID)
		if err != nil {
			return nil, fmt.Errorf("unknown licensor %q", in.LicensorID)
		}
		info.LicensorID, info.LicensorName = rec.ID, rec.Name
	}
	if in.LicenseeID != "" {
		rec, err := s.st.Master(model.MasterLicensee, in.LicenseeID)
		if err != nil {
			return nil, fmt.Errorf("unknown licensee %q", in.LicenseeID)
		}
		info.LicenseeID, info.LicenseeName = rec.ID, rec.Name
	}
	if in.ManufacturerID != "" {
		rec, err := s.st.Master(model.MasterManufacturer, in.ManufacturerID)
		if err != nil {
			return nil, fmt.Errorf("unknown manufacturer %q", in.ManufacturerID)
		}
		info.ManufacturerID, info.ManufacturerName = rec.ID, rec.Name
	}
	for _, d := range []struct {
		raw  string
		dest **time.Time
	}{
		{in.SalesStartDate, &info.SalesStartDate},
		{in.SalesEndDate, &info.SalesEndDate},
	} {
		if d.raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", d.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", d.raw)
		}
		*d.dest = &t
	}
	return info, nil
}

func (s *productService) GetByID(id string) (*model.Product, error) {
	p, ok := s.st.Product(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrProductNotFound, id)
	}
	return &p, nil
}

func (s *productService) GetBySku(sku string) (*model.Product, error) {
	p, ok := s.st.ProductBySku(sku)
	if !ok {
		return nil, fmt.Errorf("%w: sku %s", store.ErrProductNotFound, sku)
	}
	return &p, nil
}

func (s *productService) List(filter dto.ProductFilter) []model.Product {
	products := s.st.Products()
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		switch filter.Active {
		case "false":
			if p.Active {
				continue
			}
		case "all":
		default:
			if !p.Active {
				continue
			}
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Category != "" && p.CategoryID != filter.Category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *productService) Update(id string, req dto.UpdateProductRequest, actor string) (*model.Product, error) {
	cur, ok := s.st.Product(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrProductNotFound, id)
	}

	if req.Sku != nil {
		cur.Sku = *req.Sku
	}
	if req.Name != nil {
		cur.Name = *req.Name
	}
	if req.Description != nil {
		cur.Description = *req.Description
	}
	if req.CategoryID != nil {
		rec, err := s.st.Master(model.MasterCategory, *req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("unknown category %q", *req.CategoryID)
		}
		cur.CategoryID, cur.CategoryName = rec.ID, rec.Name
	}
	if req.StorageLocationID != nil {
		rec, err := s.st.Master(model.MasterStorageLocation, *req.StorageLocationID)
		if err != nil {
			return nil, fmt.Errorf("unknown storage location %q", *req.StorageLocationID)
		}
		cur.StorageLocationID, cur.StorageLocation = rec.ID, rec.Name
	}
	if req.Price != nil {
		cur.Price = *req.Price
	}
	if req.MinStock != nil {
		cur.MinStock = *req.MinStock
	}
	if req.IPInfo != nil {
		info, err := s.buildIPInfo(req.IPInfo)
		if err != nil {
			return nil, err
		}
		cur.IPInfo = info
	}
	cur.Version = req.Version
	cur.UpdatedBy = actor

	updated, err := s.st.UpdateProduct(cur)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *productService) Deactivate(id, actor string) error {
	return s.st.DeactivateProduct(id, actor)
}

func (s *productService) Reactivate(id, actor string) error {
	return s.st.ReactivateProduct(id, actor)
}

func (s *productService) QRLabel(id string, size int) ([]byte, error) {
	p, ok := s.st.Product(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", store.ErrProductNotFound, id)
	}
	payload, err := qr.EncodePayload(&p)
	if err != nil {
		return nil, err
	}
	return qr.EncodePNG(payload, size)
}
