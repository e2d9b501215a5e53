package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullmose/cutlist-backend/internal/modules/order"
)

type fakeSource struct {
	mu     sync.Mutex
	orders []order.Order
	err    error
	calls  int
}

func (f *fakeSource) FetchPending(ctx context.Context) ([]order.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.orders, f.err
}

type fakeProcessor struct {
	mu        sync.Mutex
	processed []int64
	failOn    int64
}

func (f *fakeProcessor) Process(ctx context.Context, o order.Order) (*order.ProcessResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o.ID == f.failOn {
		return nil, errors.New("boom")
	}
	f.processed = append(f.processed, o.ID)
	return &order.ProcessResult{OrderID: o.ID}, nil
}

func TestPollerProcessesFetchedOrders(t *testing.T) {
	source := &fakeSource{orders: []order.Order{{ID: 1, Name: "#1"}, {ID: 2, Name: "#2"}}}
	processor := &fakeProcessor{}
	p := NewPoller(source, processor, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		processor.mu.Lock()
		defer processor.mu.Unlock()
		return len(processor.processed) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, []int64{1, 2}, processor.processed)
}

func TestPollerSkipsFailingOrder(t *testing.T) {
	source := &fakeSource{orders: []order.Order{{ID: 1}, {ID: 2}, {ID: 3}}}
	processor := &fakeProcessor{failOn: 2}
	p := NewPoller(source, processor, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		processor.mu.Lock()
		defer processor.mu.Unlock()
		return len(processor.processed) == 2
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
	assert.Equal(t, []int64{1, 3}, processor.processed, "one bad order never stalls the batch")
}

func TestPollerSurvivesFetchError(t *testing.T) {
	source := &fakeSource{err: errors.New("connection refused")}
	p := NewPoller(source, &fakeProcessor{}, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		source.mu.Lock()
		defer source.mu.Unlock()
		return source.calls >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on cancel")
	}
}
