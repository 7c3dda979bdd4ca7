// Package worker runs async tasks (alert digest mail) on an in-process queue.
// The store is memory-only, so the queue is too: a buffered channel drained by
// a small goroutine pool, torn down with the server context.
package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/hagisho0907/goodsstockmanage-sub000/internal/model"
)

const (
	JobAlertDigest = "alert_digest"

	queueBuffer = 64
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// AlertDigestPayload is the job body for JobAlertDigest.
type AlertDigestPayload struct {
	Alerts []model.Alert `json:"alerts"`
}

// Dispatcher enqueues async jobs onto the in-process queue. Enqueueing never
// blocks the request path: a full queue rejects the job instead.
type Dispatcher struct {
	queue chan Job
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{queue: make(chan Job, queueBuffer)}
}

// EnqueueAlertDigest pushes a digest job for freshly derived alerts.
func (d *Dispatcher) EnqueueAlertDigest(alerts []model.Alert) error {
	return d.enqueue(JobAlertDigest, AlertDigestPayload{Alerts: alerts})
}

func (d *Dispatcher) enqueue(jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	select {
	case d.queue <- Job{Type: jobType, Payload: data}:
		return nil
	default:
		return errors.New("worker queue full")
	}
}

// Handler processes one job payload.
type Handler interface {
	Process(ctx context.Context, payload json.RawMessage)
}

// WorkerHandlers maps job types to their handlers, wired at the composition
// root.
type WorkerHandlers struct {
	AlertDigest Handler
}

// StartWorkerPool launches numWorkers goroutines consuming the dispatcher
// queue. Workers exit when ctx is cancelled.
func StartWorkerPool(ctx context.Context, d *Dispatcher, handlers *WorkerHandlers, numWorkers int) {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, d, handlers, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, d *Dispatcher, handlers *WorkerHandlers, id int) {
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		case job := <-d.queue:
			processJob(ctx, handlers, job)
		}
	}
}

func processJob(ctx context.Context, handlers *WorkerHandlers, job Job) {
	switch job.Type {
	case JobAlertDigest:
		if handlers.AlertDigest != nil {
			handlers.AlertDigest.Process(ctx, job.Payload)
		}
	default:
		log.Error().Str("type", job.Type).Msg("unknown job type dropped")
	}
}
