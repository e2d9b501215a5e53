package ingest

import (
	"context"

	"github.com/bullmose/cutlist-backend/internal/modules/order"
)

// Source is the provider-agnostic interface for fetching pending orders.
// To pull from a different commerce platform, implement this interface.
type Source interface {
	// FetchPending returns orders awaiting fulfillment. One fetch, one
	// attempt: retry and backoff policy belongs to the caller.
	FetchPending(ctx context.Context) ([]order.Order, error)
}

// Processor consumes one fetched order. Satisfied by the order service.
type Processor interface {
	Process(ctx context.Context, o order.Order) (*order.ProcessResult, error)
}
