package model

import "time"

// Master-data kinds administered alongside the catalog.
const (
	MasterCategory        = "category"
	MasterStorageLocation = "location"
	MasterLicensor        = "licensor"
	MasterLicensee        = "licensee"
	MasterManufacturer    = "manufacturer"
)

// MasterRecord is a generic master-data entry (category, storage location,
// licensor, licensee, manufacturer). The five kinds share one shape.
type MasterRecord struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
