package dto

import "github.com/hagisho0907/goodsstockmanage-sub000/internal/model"

// ResolvePayloadRequest carries raw payload text already decoded from a code
// (e.g. by a browser-side camera reader).
type ResolvePayloadRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ScanResolveResponse is the outcome of a successful decode/parse/lookup.
type ScanResolveResponse struct {
	Result  model.ScanResult `json:"result"`
	Product *model.Product   `json:"product,omitempty"`
}

// MasterRequest creates or renames one master-data record.
type MasterRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=120"`
	Description string `json:"description" validate:"max=500"`
}
