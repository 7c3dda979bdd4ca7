// Package store is the in-memory system of record: product catalog,
// append-only movement log, master data and users, seeded from fixtures.
// It is an explicit owned instance — construct one per server (or per test)
// instead of sharing module-level state.
//
// All access goes through the store's mutex. Exposing the ledger over a
// network boundary turns the check-then-write in ApplyMovement into a race
// between concurrent writers, so the store serializes writers and products
// additionally carry a version counter checked on direct edits.
// Read methods return defensive copies; callers never see internal state.
package store

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/ledger"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateSku    = errors.New("sku already registered")
	ErrVersionConflict = errors.New("product was modified by another writer")
)

// Store holds all application state behind one mutex.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	products     map[string]*model.Product
	productOrder []string
	movements    []model.StockMovement

	masters     map[string]map[string]*model.MasterRecord
	masterOrder map[string][]string

	users map[uuid.UUID]*model.User

	seq int64 // product/master id sequence
}

// Option configures a Store at construction time.
type Option func(*Store)

// WithClock overrides the store clock; tests pin it for deterministic stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns an empty store. Seed it via the seed package or the Create
// methods.
func New(opts ...Option) *Store {
	s := &Store{
		now:         time.Now,
		products:    make(map[string]*model.Product),
		masters:     make(map[string]map[string]*model.MasterRecord),
		masterOrder: make(map[string][]string),
		users:       make(map[uuid.UUID]*model.User),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) nextID() string {
	s.seq++
	return strconv.FormatInt(s.seq, 10)
}

// ── Products ────────────────────────────────────────────────────────────────

// Products returns the catalog in registration order.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, copyProduct(s.products[id]))
	}
	return out
}

// Product resolves a product by id; false when absent. Catalog lookups by
// scanned payload id land here.
func (s *Store) Product(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return model.Product{}, false
	}
	return copyProduct(p), true
}

// ProductBySku resolves a product by SKU (linear scan; the catalog is small).
func (s *Store) ProductBySku(sku string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.productOrder {
		if p := s.products[id]; p.Sku == sku {
			return copyProduct(p), true
		}
	}
	return model.Product{}, false
}

// CreateProduct registers a new product. An empty ID is assigned from the
// store sequence. CurrentStock is always recomputed from the breakdown.
func (s *Store) CreateProduct(p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = s.nextID()
	}
	if _, exists := s.products[p.ID]; exists {
		return model.Product{}, fmt.Errorf("product id %q already registered", p.ID)
	}
	for _, id := range s.productOrder {
		if s.products[id].Sku == p.Sku {
			return model.Product{}, fmt.Errorf("%w: %s", ErrDuplicateSku, p.Sku)
		}
	}

	now := s.now()
	p.CurrentStock = p.StockBreakdown.Total()
	p.Active = true
	p.Version = 1
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.UpdatedBy == "" {
		p.UpdatedBy = p.CreatedBy
	}

	cp := copyProduct(&p)
	s.products[p.ID] = &cp
	s.productOrder = append(s.productOrder, p.ID)
	return p, nil
}

// UpdateProduct replaces a product's editable fields. The caller must supply
// the version it read; a stale version is rejected so two concurrent editors
// cannot silently overwrite each other. Stock fields are not editable here —
// stock changes only flow through ApplyMovement.
func (s *Store) UpdateProduct(p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.products[p.ID]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, p.ID)
	}
	if p.Version != cur.Version {
		return model.Product{}, fmt.Errorf("%w: %s (have v%d, got v%d)", ErrVersionConflict, p.ID, cur.Version, p.Version)
	}

	cur.Sku = p.Sku
	cur.Name = p.Name
	cur.Description = p.Description
	cur.CategoryID = p.CategoryID
	cur.CategoryName = p.CategoryName
	cur.StorageLocationID = p.StorageLocationID
	cur.StorageLocation = p.StorageLocation
	cur.Price = p.Price
	cur.MinStock = p.MinStock
	cur.IPInfo = copyIPInfo(p.IPInfo)
	cur.UpdatedBy = p.UpdatedBy
	cur.UpdatedAt = s.now()
	cur.Version++
	return copyProduct(cur), nil
}

// DeactivateProduct marks a product inactive. Products are never deleted, so
// the movement log always resolves.
func (s *Store) DeactivateProduct(id, by string) error {
	return s.setProductActive(id, by, false)
}

// ReactivateProduct marks a previously deactivated product active again.
func (s *Store) ReactivateProduct(id, by string) error {
	return s.setProductActive(id, by, true)
}

func (s *Store) setProductActive(id, by string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, id)
	}
	p.Active = active
	p.UpdatedBy = by
	p.UpdatedAt = s.now()
	p.Version++
	return nil
}

// ── Movements ───────────────────────────────────────────────────────────────

// ApplyMovement validates and commits one stock movement under the store lock:
// the sufficiency check, the breakdown mutation and the log append are one
// atomic step with respect to other writers. On success it returns the updated
// product and the committed movement record.
func (s *Store) ApplyMovement(mv model.StockMovement) (model.Product, model.StockMovement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(mv)
}

// BatchItemResult reports the outcome of one item in a batch submission.
type BatchItemResult struct {
	Index    int
	Product  model.Product
	Movement model.StockMovement
	Err      error
}

// ApplyMovements applies each movement in order. The batch is not atomic:
// a failed item is reported in its result and does not roll back the items
// committed before it, and processing continues with the items after it.
func (s *Store) ApplyMovements(mvs []model.StockMovement) []BatchItemResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]BatchItemResult, 0, len(mvs))
	for i, mv := range mvs {
		p, committed, err := s.applyLocked(mv)
		results = append(results, BatchItemResult{Index: i, Product: p, Movement: committed, Err: err})
	}
	return results
}

func (s *Store) applyLocked(mv model.StockMovement) (model.Product, model.StockMovement, error) {
	p, ok := s.products[mv.ProductID]
	if !ok {
		return model.Product{}, model.StockMovement{}, fmt.Errorf("%w: %s", ErrProductNotFound, mv.ProductID)
	}

	// Work on a copy so a validation failure leaves the product untouched.
	next := copyProduct(p)
	mv.ID = uuid.New()
	if err := ledger.Apply(&next, &mv, s.now()); err != nil {
		return model.Product{}, model.StockMovement{}, err
	}

	*p = copyProduct(&next)
	s.movements = append(s.movements, mv)
	return copyProduct(p), mv, nil
}

// Movements returns the movement log, newest first.
func (s *Store) Movements() []model.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.StockMovement, len(s.movements))
	for i, mv := range s.movements {
		out[len(s.movements)-1-i] = mv
	}
	return out
}

// MovementsForProduct returns the movement log for one product, newest first.
func (s *Store) MovementsForProduct(productID string) []model.StockMovement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.StockMovement
	for i := len(s.movements) - 1; i >= 0; i-- {
		if s.movements[i].ProductID == productID {
			out = append(out, s.movements[i])
		}
	}
	return out
}

// ── Copy helpers ────────────────────────────────────────────────────────────

func copyProduct(p *model.Product) model.Product {
	cp := *p
	cp.IPInfo = copyIPInfo(p.IPInfo)
	return cp
}

func copyIPInfo(info *model.IPInfo) *model.IPInfo {
	if info == nil {
		return nil
	}
	cp := *info
	if info.SalesStartDate != nil {
		t := *info.SalesStartDate
		cp.SalesStartDate = &t
	}
	if info.SalesEndDate != nil {
		t := *info.SalesEndDate
		cp.SalesEndDate = &t
	}
	return &cp
}
