package ingest

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Poller periodically fetches pending orders and feeds them through the
// order pipeline. Failures are per order: one malformed order is logged and
// skipped, never stalling the batch.
type Poller struct {
	source    Source
	processor Processor
	interval  time.Duration
}

// NewPoller creates a poller. Intervals below one second are clamped.
func NewPoller(source Source, processor Processor, interval time.Duration) *Poller {
	if interval < time.Second {
		interval = time.Second
	}
	return &Poller{source: source, processor: processor, interval: interval}
}

// Run polls until ctx is cancelled. The first fetch happens immediately.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			log.Println("order poller stopped")
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	// Batch id ties one poll cycle's log lines together.
	batch := uuid.NewString()[:8]

	orders, err := p.source.FetchPending(ctx)
	if err != nil {
		log.Printf("[%s] fetch pending orders: %v", batch, err)
		return
	}
	for _, o := range orders {
		result, err := p.processor.Process(ctx, o)
		if err != nil {
			log.Printf("[%s] process order %s (%d): %v", batch, o.Name, o.ID, err)
			continue
		}
		if result.AlreadyProcessed {
			continue
		}
		log.Printf("[%s] order %s: merged %d deltas, %d warnings",
			batch, o.Name, result.Merged, len(result.Warnings))
		for _, w := range result.Warnings {
			log.Printf("[%s] order %s item %q: %s", batch, o.Name, w.ItemTitle, w.Reason)
		}
	}
}
