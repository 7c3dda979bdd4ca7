package worker

// alert_digest_worker.go
// Sends a plain-text digest of freshly derived stock/expiry alerts to the
// configured operations address.

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/infra"
)

// AlertDigestWorker processes JobAlertDigest jobs.
type AlertDigestWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewAlertDigestWorker(mailer *infra.Mailer, to string) *AlertDigestWorker {
	return &AlertDigestWorker{mailer: mailer, to: to}
}

// Process formats and sends the digest. Unconfigured mail or a missing
// recipient drops the digest with a debug log — alerts remain available on
// the alerts endpoint either way.
func (w *AlertDigestWorker) Process(_ context.Context, raw json.RawMessage) {
	var payload AlertDigestPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("alert_digest_worker: invalid payload")
		return
	}
	if len(payload.Alerts) == 0 {
		return
	}
	if !w.mailer.Configured() || w.to == "" {
		log.Debug().Int("alerts", len(payload.Alerts)).Msg("alert_digest_worker: mail not configured, digest dropped")
		return
	}

	var b strings.Builder
	b.WriteString("The following inventory alerts were raised:\n\n")
	for _, a := range payload.Alerts {
		fmt.Fprintf(&b, "[%s] %s: %s\n", strings.ToUpper(a.Severity), a.Type, a.Message)
	}

	subject := fmt.Sprintf("Inventory alerts (%d)", len(payload.Alerts))
	if err := w.mailer.SendAlertDigest(w.to, subject, b.String()); err != nil {
		log.Error().Err(err).Str("to", w.to).Msg("alert_digest_worker: failed to send digest")
		return
	}
	log.Info().Str("to", w.to).Int("alerts", len(payload.Alerts)).Msg("alert_digest_worker: digest sent")
}
