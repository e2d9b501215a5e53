package inventory

import (
	"context"
	"fmt"
)

// Service answers ready-to-ship stock questions for the order pipeline.
type Service interface {
	// CheckStock verifies that on-hand stock for a (name, color) pair is
	// at or above its configured minimum. A shortfall is reported as
	// ErrInsufficientStock; no fulfillment action is taken here.
	CheckStock(ctx context.Context, name, colorName string) error

	// Level returns the current on-hand count and minimum for reporting.
	Level(ctx context.Context, name, colorName string) (*Level, error)
}

type service struct {
	repo Repository
}

// NewService creates a new inventory service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CheckStock(ctx context.Context, name, colorName string) error {
	onHand, err := s.repo.Count(ctx, name, colorName)
	if err != nil {
		return err
	}
	minimum, err := s.repo.MinThreshold(ctx, name, colorName)
	if err != nil {
		return err
	}
	if onHand < minimum {
		return fmt.Errorf("%w: %s / %s has %d on hand, minimum %d",
			ErrInsufficientStock, name, colorName, onHand, minimum)
	}
	return nil
}

func (s *service) Level(ctx context.Context, name, colorName string) (*Level, error) {
	onHand, err := s.repo.Count(ctx, name, colorName)
	if err != nil {
		return nil, err
	}
	minimum, err := s.repo.MinThreshold(ctx, name, colorName)
	if err != nil {
		return nil, err
	}
	return &Level{ItemName: name, Color: colorName, OnHand: onHand, Minimum: minimum}, nil
}
