package inventory

import (
	"context"
	"strings"
	"sync"
)

type memoryItem struct {
	itemName string
	quantity int
	minimum  int
}

// MemoryRepository is an in-memory Repository for tests. Item names carry
// the color label inline, matching how finished goods rows are stored.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []memoryItem
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository { return &MemoryRepository{} }

// SetStock records on-hand quantity and minimum for a labelled item.
func (r *MemoryRepository) SetStock(itemName string, quantity, minimum int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, memoryItem{itemName: itemName, quantity: quantity, minimum: minimum})
}

func (r *MemoryRepository) Count(ctx context.Context, name, colorName string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	total := 0
	for _, it := range r.items {
		if strings.Contains(it.itemName, name) && strings.Contains(it.itemName, colorName) {
			total += it.quantity
		}
	}
	return total, nil
}

func (r *MemoryRepository) MinThreshold(ctx context.Context, name, colorName string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, it := range r.items {
		if strings.Contains(it.itemName, name) && strings.Contains(it.itemName, colorName) {
			return it.minimum, nil
		}
	}
	return 0, nil
}
