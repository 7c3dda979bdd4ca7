package scanner

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
	"github.com/hagisho0907/goodsstockmanage-sub000/internal/qr"
)

// ErrCaptureUnavailable reports a camera permission or device failure. It is
// a distinct condition from "no code in this frame": the caller falls back to
// the manual search/upload path instead of retrying.
var ErrCaptureUnavailable = errors.New("capture unavailable")

// DefaultInterval is the polling interval between decode attempts.
const DefaultInterval = 300 * time.Millisecond

// FrameSource supplies camera frames. Frame returns (nil, nil) when no frame
// is ready yet; an error means the device failed. Close releases the device
// and must be safe to call exactly once.
type FrameSource interface {
	Frame() (image.Image, error)
	Close() error
}

// Resolver turns decoded payload text into a catalog hit. The scan service
// implements it; the session stays free of store wiring.
type Resolver interface {
	Resolve(raw string) (model.ScanResult, *model.Product, error)
}

// Detection is delivered for every frame whose payload parsed and resolved.
type Detection struct {
	Raw     string
	Result  model.ScanResult
	Product *model.Product
}

// Session polls a frame source for QR codes at a bounded interval and pushes
// every successful detection into the scan history. It runs until its context
// is cancelled; the frame source is released on every exit path.
type Session struct {
	src      FrameSource
	resolver Resolver
	history  *History
	interval time.Duration
	now      func() time.Time

	// OnDetect, when set, is invoked synchronously for each detection.
	// Scanning continues afterward — the session stops only by cancellation.
	OnDetect func(Detection)
}

// NewSession wires a polling session. interval <= 0 falls back to
// DefaultInterval.
func NewSession(src FrameSource, resolver Resolver, history *History, interval time.Duration) *Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Session{
		src:      src,
		resolver: resolver,
		history:  history,
		interval: interval,
		now:      time.Now,
	}
}

// Run blocks, decoding one frame per tick, until ctx is cancelled. Decode and
// resolve failures are logged and do not stop the loop. The device failing is
// fatal to the session and surfaces as ErrCaptureUnavailable.
func (s *Session) Run(ctx context.Context) error {
	defer func() {
		if err := s.src.Close(); err != nil {
			log.Warn().Err(err).Msg("scanner: release frame source")
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := s.scanOnce(); err != nil {
				return err
			}
		}
	}
}

func (s *Session) scanOnce() error {
	frame, err := s.src.Frame()
	if err != nil {
		return errors.Join(ErrCaptureUnavailable, err)
	}
	if frame == nil {
		return nil // no frame ready yet
	}

	raw, err := qr.Decode(frame)
	if err != nil {
		log.Debug().Err(err).Msg("scanner: frame decode failed")
		return nil
	}
	if raw == "" {
		return nil // no code in this frame
	}

	res, product, err := s.resolver.Resolve(raw)
	if err != nil {
		// Bad payload or unknown product: report and keep scanning.
		log.Info().Err(err).Str("payload", raw).Msg("scanner: payload rejected")
		return nil
	}

	s.history.record(res, product, s.now())
	if s.OnDetect != nil {
		s.OnDetect(Detection{Raw: raw, Result: res, Product: product})
	}
	return nil
}
