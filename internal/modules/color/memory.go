package color

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"
)

// MemoryRegistry is an in-memory Registry for tests and single-process runs.
type MemoryRegistry struct {
	mu     sync.RWMutex
	byName map[string]*Color
	nextID int64
}

var _ Registry = (*MemoryRegistry)(nil)

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{byName: make(map[string]*Color), nextID: 1}
}

func (r *MemoryRegistry) Resolve(ctx context.Context, name string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrColorNotFound, name)
	}
	return c.ID, nil
}

func (r *MemoryRegistry) Register(ctx context.Context, name, hexCode string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byName[name]; ok {
		c.HexCode = hexCode
		return c.ID, nil
	}
	c := &Color{ID: r.nextID, Name: name, HexCode: hexCode, CreatedAt: time.Now()}
	r.nextID++
	r.byName[name] = c
	return c.ID, nil
}

func (r *MemoryRegistry) List(ctx context.Context) ([]*Color, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	colors := make([]*Color, 0, len(r.byName))
	for _, c := range r.byName {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Name < colors[j].Name })
	return colors, nil
}
