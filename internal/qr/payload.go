// Package qr owns both halves of the product-label contract: encoding a
// product into the label payload (and its PNG rendering) and decoding/parsing
// a scanned payload back into a typed result. Generator and scanner agree on
// one exact JSON shape:
//
//	{"type":"product","id":"<string>", ...optional enrichment fields}
//
// Unknown extra fields are ignored on parse, so older scanners keep working
// against richer labels.
package qr

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

// PayloadType is the only accepted value of the payload "type" field.
const PayloadType = "product"

// ErrInvalidPayload rejects text that is not a well-formed product payload:
// not JSON, wrong type discriminator, or missing id. Callers recover locally
// by re-prompting for a rescan.
var ErrInvalidPayload = errors.New("invalid scan payload")

// Parse validates raw text as a product payload and returns the typed result.
// This is a strict boundary — there is no partial acceptance.
func Parse(raw string) (model.ScanResult, error) {
	var res model.ScanResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return model.ScanResult{}, fmt.Errorf("%w: not valid JSON", ErrInvalidPayload)
	}
	if res.Type != PayloadType {
		return model.ScanResult{}, fmt.Errorf("%w: type %q is not %q", ErrInvalidPayload, res.Type, PayloadType)
	}
	if strings.TrimSpace(res.ID) == "" {
		return model.ScanResult{}, fmt.Errorf("%w: missing product id", ErrInvalidPayload)
	}
	return res, nil
}

// EncodePayload serializes a product into the label payload text.
// The enrichment fields let a standalone reader show something useful even
// without catalog access.
func EncodePayload(p *model.Product) (string, error) {
	price, _ := p.Price.Float64()
	res := model.ScanResult{
		Type:     PayloadType,
		ID:       p.ID,
		Name:     p.Name,
		Sku:      p.Sku,
		Category: p.CategoryName,
		Location: p.StorageLocation,
		Price:    price,
		Quantity: p.CurrentStock,
	}
	if p.IPInfo != nil && p.IPInfo.SalesEndDate != nil {
		res.ExpiryDate = p.IPInfo.SalesEndDate.Format("2006-01-02")
	}
	data, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("qr: encode payload: %w", err)
	}
	return string(data), nil
}
