package cutlist

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/bullmose/cutlist-backend/internal/modules/color"
)

type entryKey struct {
	partName string
	filePath string
	colorID  int64
}

// MemoryLedger is an in-memory Ledger backed by a color registry. A single
// mutex guards both maps, which serializes same-key merges and makes the
// record-order existence check atomic with its insert.
type MemoryLedger struct {
	mu      sync.Mutex
	colors  color.Registry
	entries map[entryKey]*Entry
	byID    map[int64]entryKey
	orders  map[int64][]byte
	nextID  int64
}

var _ Ledger = (*MemoryLedger)(nil)

func NewMemoryLedger(colors color.Registry) *MemoryLedger {
	return &MemoryLedger{
		colors:  colors,
		entries: make(map[entryKey]*Entry),
		byID:    make(map[int64]entryKey),
		orders:  make(map[int64][]byte),
		nextID:  1,
	}
}

func (l *MemoryLedger) RecordOrder(ctx context.Context, orderID int64, payload []byte) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.orders[orderID]; exists {
		return false, nil
	}
	snapshot := make([]byte, len(payload))
	copy(snapshot, payload)
	l.orders[orderID] = snapshot
	return true, nil
}

func (l *MemoryLedger) Merge(ctx context.Context, d Delta) error {
	colorID, err := l.colors.Resolve(ctx, d.Color)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	key := entryKey{partName: d.PartName, filePath: d.FilePath, colorID: colorID}
	if e, ok := l.entries[key]; ok {
		e.Quantity += d.Quantity
		e.UpdatedAt = time.Now()
		return nil
	}
	e := &Entry{
		ID:        l.nextID,
		PartName:  d.PartName,
		FilePath:  d.FilePath,
		ColorID:   colorID,
		Color:     d.Color,
		Quantity:  d.Quantity,
		UpdatedAt: time.Now(),
	}
	l.nextID++
	l.entries[key] = e
	l.byID[e.ID] = key
	return nil
}

func (l *MemoryLedger) Decrement(ctx context.Context, entryID int64, quantity int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	key, ok := l.byID[entryID]
	if !ok {
		return fmt.Errorf("%w: id %d", ErrEntryNotFound, entryID)
	}
	e := l.entries[key]
	e.Quantity -= quantity
	if e.Quantity <= 0 {
		delete(l.entries, key)
		delete(l.byID, entryID)
		return nil
	}
	e.UpdatedAt = time.Now()
	return nil
}

func (l *MemoryLedger) List(ctx context.Context) ([]*Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entries := make([]*Entry, 0, len(l.entries))
	for _, e := range l.entries {
		clone := *e
		entries = append(entries, &clone)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].PartName != entries[j].PartName {
			return entries[i].PartName < entries[j].PartName
		}
		return entries[i].Color < entries[j].Color
	})
	return entries, nil
}
