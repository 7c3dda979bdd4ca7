// Package alert derives low-stock and sales-window alerts from catalog state.
// Derivation is a pure function of the product list and the clock reading:
// it is re-run on every read and never diffed against a previous alert set,
// so there is no "alert resolved" event to manage.
package alert

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

// Stock thresholds. At or below LowStockWarning a warning fires; at or below
// LowStockCritical (and at zero) the severity escalates to error.
const (
	LowStockWarning  = 10
	LowStockCritical = 5

	// ExpiryWindowDays is how far ahead of a sales-window end an expiring
	// alert fires.
	ExpiryWindowDays = 30
)

var severityRank = map[string]int{
	model.SeverityError:   0,
	model.SeverityWarning: 1,
	model.SeverityInfo:    2,
}

// Derive recomputes the alert list for the given products at the given clock
// reading. Alert IDs are deterministic (type + product id), so two calls with
// the same inputs yield identical output. The result is newest-first; since
// every alert shares the generation timestamp, per-product iteration order is
// the effective tie-break.
func Derive(products []model.Product, now time.Time) []model.Alert {
	var alerts []model.Alert
	for _, p := range products {
		if a, ok := stockAlert(&p, now); ok {
			alerts = append(alerts, a)
		}
		if a, ok := expiryAlert(&p, now); ok {
			alerts = append(alerts, a)
		}
	}
	return alerts
}

func stockAlert(p *model.Product, now time.Time) (model.Alert, bool) {
	switch {
	case p.CurrentStock == 0:
		return lowStock(p, model.SeverityError, fmt.Sprintf("%s is out of stock", p.Name), now), true
	case p.CurrentStock <= LowStockCritical:
		return lowStock(p, model.SeverityError,
			fmt.Sprintf("%s is critically low on stock (%d left)", p.Name, p.CurrentStock), now), true
	case p.CurrentStock <= LowStockWarning:
		return lowStock(p, model.SeverityWarning,
			fmt.Sprintf("%s is low on stock (%d left)", p.Name, p.CurrentStock), now), true
	}
	return model.Alert{}, false
}

func lowStock(p *model.Product, severity, msg string, now time.Time) model.Alert {
	return model.Alert{
		ID:        model.AlertLowStock + ":" + p.ID,
		Type:      model.AlertLowStock,
		Severity:  severity,
		Message:   msg,
		ProductID: p.ID,
		CreatedAt: now,
	}
}

func expiryAlert(p *model.Product, now time.Time) (model.Alert, bool) {
	if p.IPInfo == nil || p.IPInfo.SalesEndDate == nil {
		return model.Alert{}, false
	}
	days := DaysUntil(*p.IPInfo.SalesEndDate, now)
	switch {
	case days < 0:
		return model.Alert{
			ID:        model.AlertExpired + ":" + p.ID,
			Type:      model.AlertExpired,
			Severity:  model.SeverityError,
			Message:   fmt.Sprintf("sales window for %s has ended", p.Name),
			ProductID: p.ID,
			CreatedAt: now,
		}, true
	case days <= ExpiryWindowDays:
		return model.Alert{
			ID:        model.AlertExpiring + ":" + p.ID,
			Type:      model.AlertExpiring,
			Severity:  model.SeverityWarning,
			Message:   fmt.Sprintf("sales window for %s ends in %d days", p.Name, days),
			ProductID: p.ID,
			CreatedAt: now,
		}, true
	}
	return model.Alert{}, false
}

// DaysUntil returns the number of whole days from now until t, rounding up.
// A deadline later today is 0 days away; yesterday is -1.
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// SortBySeverity orders alerts error < warning < info, in place. This is a
// presentation aid for dashboards; Derive's own ordering is the contract.
func SortBySeverity(alerts []model.Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		return severityRank[alerts[i].Severity] < severityRank[alerts[j].Severity]
	})
}
