package cutlist

import (
	"context"
	"fmt"
)

// Service defines cut-list reporting and fulfillment operations.
type Service interface {
	// Report returns the aggregated cut list for the cutting table.
	Report(ctx context.Context) ([]*Entry, error)

	// MarkCut records that quantity units of an entry were cut or pulled.
	// A quantity of zero defaults to one, matching single-piece workflow.
	MarkCut(ctx context.Context, entryID int64, quantity int) error
}

type service struct {
	ledger Ledger
}

// NewService creates a new cut-list service.
func NewService(ledger Ledger) Service {
	return &service{ledger: ledger}
}

func (s *service) Report(ctx context.Context) ([]*Entry, error) {
	return s.ledger.List(ctx)
}

func (s *service) MarkCut(ctx context.Context, entryID int64, quantity int) error {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	return s.ledger.Decrement(ctx, entryID, quantity)
}
