package store

import (
	"fmt"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

var masterKinds = map[string]bool{
	model.MasterCategory:        true,
	model.MasterStorageLocation: true,
	model.MasterLicensor:        true,
	model.MasterLicensee:        true,
	model.MasterManufacturer:    true,
}

// ValidMasterKind reports whether kind names one of the administered
// master-data collections.
func ValidMasterKind(kind string) bool { return masterKinds[kind] }

// Masters lists one master-data collection in creation order.
func (s *Store) Masters(kind string) ([]model.MasterRecord, error) {
	if !ValidMasterKind(kind) {
		return nil, fmt.Errorf("unknown master kind %q", kind)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.masterOrder[kind]
	out := make([]model.MasterRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, *s.masters[kind][id])
	}
	return out, nil
}

// Master resolves one record by kind and id.
func (s *Store) Master(kind, id string) (model.MasterRecord, error) {
	if !ValidMasterKind(kind) {
		return model.MasterRecord{}, fmt.Errorf("unknown master kind %q", kind)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.masters[kind][id]
	if !ok {
		return model.MasterRecord{}, fmt.Errorf("%w: %s/%s", ErrNotFound, kind, id)
	}
	return *rec, nil
}

// CreateMaster adds one record to a master-data collection. An empty ID is
// assigned from the store sequence; duplicate names within a kind are
// rejected.
func (s *Store) CreateMaster(rec model.MasterRecord) (model.MasterRecord, error) {
	if !ValidMasterKind(rec.Kind) {
		return model.MasterRecord{}, fmt.Errorf("unknown master kind %q", rec.Kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.masterOrder[rec.Kind] {
		if s.masters[rec.Kind][id].Name == rec.Name {
			return model.MasterRecord{}, fmt.Errorf("%s %q already exists", rec.Kind, rec.Name)
		}
	}

	if rec.ID == "" {
		rec.ID = s.nextID()
	}
	now := s.now()
	rec.Active = true
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if s.masters[rec.Kind] == nil {
		s.masters[rec.Kind] = make(map[string]*model.MasterRecord)
	}
	cp := rec
	s.masters[rec.Kind][rec.ID] = &cp
	s.masterOrder[rec.Kind] = append(s.masterOrder[rec.Kind], rec.ID)
	return rec, nil
}

// UpdateMaster renames/redescribes a record.
func (s *Store) UpdateMaster(rec model.MasterRecord) (model.MasterRecord, error) {
	if !ValidMasterKind(rec.Kind) {
		return model.MasterRecord{}, fmt.Errorf("unknown master kind %q", rec.Kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.masters[rec.Kind][rec.ID]
	if !ok {
		return model.MasterRecord{}, fmt.Errorf("%w: %s/%s", ErrNotFound, rec.Kind, rec.ID)
	}
	cur.Name = rec.Name
	cur.Description = rec.Description
	cur.UpdatedAt = s.now()
	return *cur, nil
}

// DeactivateMaster marks a record inactive; referencing products keep their
// denormalized names.
func (s *Store) DeactivateMaster(kind, id string) error {
	if !ValidMasterKind(kind) {
		return fmt.Errorf("unknown master kind %q", kind)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.masters[kind][id]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, kind, id)
	}
	rec.Active = false
	rec.UpdatedAt = s.now()
	return nil
}
