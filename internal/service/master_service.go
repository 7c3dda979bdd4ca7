package service

import (
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/dto"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/store"
)

// MasterService administers the five master-data collections (categories,
// storage locations, licensors, licensees, manufacturers).
type MasterService interface {
	List(kind string) ([]model.MasterRecord, error)
	Create(kind string, req dto.MasterRequest) (*model.MasterRecord, error)
	Update(kind, id string, req dto.MasterRequest) (*model.MasterRecord, error)
	Deactivate(kind, id string) error
}

type masterService struct {
	st *store.Store
}

func NewMasterService(st *store.Store) MasterService {
	return &masterService{st: st}
}

func (s *masterService) List(kind string) ([]model.MasterRecord, error) {
	return s.st.Masters(kind)
}

func (s *masterService) Create(kind string, req dto.MasterRequest) (*model.MasterRecord, error) {
	rec, err := s.st.CreateMaster(model.MasterRecord{
		Kind:        kind,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *masterService) Update(kind, id string, req dto.MasterRequest) (*model.MasterRecord, error) {
	rec, err := s.st.UpdateMaster(model.MasterRecord{
		Kind:        kind,
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *masterService) Deactivate(kind, id string) error {
	return s.st.DeactivateMaster(kind, id)
}
