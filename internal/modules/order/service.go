package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bullmose/cutlist-backend/internal/modules/color"
	"github.com/bullmose/cutlist-backend/internal/modules/cutlist"
)

// ProcessResult summarizes what one order submission did to the ledger.
type ProcessResult struct {
	OrderID          int64           `json:"order_id"`
	OrderName        string          `json:"order_name,omitempty"`
	AlreadyProcessed bool            `json:"already_processed"`
	Merged           int             `json:"merged"`
	Deltas           []cutlist.Delta `json:"deltas,omitempty"`
	Warnings         []Warning       `json:"warnings,omitempty"`
}

// Service defines order intake business logic.
type Service interface {
	// Process records the order, decomposes it, and merges the resulting
	// deltas into the cut-list ledger. Re-submitting a recorded order id
	// is a no-op flagged AlreadyProcessed; the decomposition is not
	// re-applied. Per-item and per-delta problems come back as warnings,
	// only ledger storage failures are returned as errors.
	Process(ctx context.Context, o Order) (*ProcessResult, error)
}

type service struct {
	engine *Engine
	ledger cutlist.Ledger
}

// NewService creates a new order service.
func NewService(engine *Engine, ledger cutlist.Ledger) Service {
	return &service{engine: engine, ledger: ledger}
}

func (s *service) Process(ctx context.Context, o Order) (*ProcessResult, error) {
	if o.ID == 0 {
		return nil, fmt.Errorf("order id is required")
	}

	payload, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("snapshot order %d: %w", o.ID, err)
	}

	recorded, err := s.ledger.RecordOrder(ctx, o.ID, payload)
	if err != nil {
		return nil, err
	}
	result := &ProcessResult{OrderID: o.ID, OrderName: o.Name}
	if !recorded {
		result.AlreadyProcessed = true
		return result, nil
	}

	deltas, warnings := s.engine.Decompose(ctx, o)
	result.Deltas = deltas
	result.Warnings = warnings

	for _, d := range deltas {
		if err := s.ledger.Merge(ctx, d); err != nil {
			if errors.Is(err, color.ErrColorNotFound) {
				// Bad color on one delta must not sink the rest of
				// the order; the operator fixes the vocabulary.
				result.Warnings = append(result.Warnings, newWarning(d.PartName, err))
				continue
			}
			return nil, fmt.Errorf("merge delta for order %d: %w", o.ID, err)
		}
		result.Merged++
	}

	return result, nil
}
