// Package worker runs projections on a single background goroutine, one
// request at a time, consulting a single-slot result cache first.
package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/propgo/roadmap-engine/internal/calculation"
	"github.com/propgo/roadmap-engine/internal/domain"
)

// ErrStopped is returned by Submit after Stop
var ErrStopped = errors.New("projection worker stopped")

type job struct {
	req   *domain.ProjectionRequest
	reply chan domain.ProjectionResponse
}

// Worker serializes projection requests onto one goroutine
type Worker struct {
	projector *calculation.Projector
	cache     *calculation.Cache
	jobs      chan job
	done      chan struct{}
	stopped   chan struct{}
	stopOnce  sync.Once
}

// New creates a worker. Call Start before Submit.
func New(projector *calculation.Projector) *Worker {
	return &Worker{
		projector: projector,
		cache:     calculation.NewCache(),
		jobs:      make(chan job),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
}

// Start launches the background loop
func (w *Worker) Start() {
	go w.loop()
}

// Stop ends the loop and waits for the in-flight request to finish
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
	<-w.stopped
}

// Submit sends a request and waits for its reply. Cancelling ctx abandons the
// wait; a calculation already running completes and its reply is discarded.
func (w *Worker) Submit(ctx context.Context, req *domain.ProjectionRequest) (domain.ProjectionResponse, error) {
	j := job{req: req, reply: make(chan domain.ProjectionResponse, 1)}
	select {
	case w.jobs <- j:
	case <-w.done:
		return domain.ProjectionResponse{}, ErrStopped
	case <-ctx.Done():
		return domain.ProjectionResponse{}, ctx.Err()
	}

	select {
	case resp := <-j.reply:
		return resp, nil
	case <-ctx.Done():
		return domain.ProjectionResponse{}, ctx.Err()
	}
}

func (w *Worker) loop() {
	defer close(w.stopped)
	for {
		select {
		case <-w.done:
			return
		case j := <-w.jobs:
			j.reply <- w.handle(j.req)
		}
	}
}

// handle computes one reply. Failures never touch the cache.
func (w *Worker) handle(req *domain.ProjectionRequest) (resp domain.ProjectionResponse) {
	resp.RequestID = uuid.NewString()
	defer func() {
		if r := recover(); r != nil {
			w.projector.Logger.Errorf("projection %s panicked: %v", resp.RequestID, r)
			resp.Projection = nil
			resp.Cached = false
			resp.Error = fmt.Sprintf("calculation failed: %v", r)
		}
	}()

	key, err := calculation.Fingerprint(req)
	if err != nil {
		resp.Error = err.Error()
		return resp
	}
	if cached, ok := w.cache.Get(key); ok {
		resp.Projection = cached
		resp.Cached = true
		return resp
	}

	projection, err := w.projector.Project(req)
	if err != nil {
		w.projector.Logger.Warnf("projection %s rejected: %v", resp.RequestID, err)
		resp.Error = err.Error()
		return resp
	}
	w.cache.Put(key, projection)
	resp.Projection = projection
	return resp
}
