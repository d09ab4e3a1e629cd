package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes page views to a fixed set of workers using consistent
// hashing on the website ID, so counters for one website are updated by a
// single worker and never race on the daily bucket.
type Dispatcher struct {
	workers []chan domain.PageView
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.PageView, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.PageView, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a page view to the worker responsible for its website.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(view domain.PageView) {
	d.workers[d.shardIndex(view.WebsiteID)] <- view
}

// shardIndex maps a website ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(websiteID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(websiteID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.PageView) {
	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Process(ctx, view); err != nil {
				d.log.Error().Err(err).
					Str("website_id", view.WebsiteID).
					Int("worker_id", id).
					Msg("page view processing failed")
			}
		}
	}
}
