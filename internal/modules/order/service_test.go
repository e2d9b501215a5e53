package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullmose/cutlist-backend/internal/modules/color"
	"github.com/bullmose/cutlist-backend/internal/modules/cutlist"
)

func newProcessingPipeline(t *testing.T) (Service, *cutlist.MemoryLedger) {
	t.Helper()
	reg := color.NewMemoryRegistry()
	ctx := context.Background()
	for _, name := range []string{"Forest Green", "Cheetah", "Pink", "Neon Yellow", "Black", "Silver"} {
		_, err := reg.Register(ctx, name, "")
		require.NoError(t, err)
	}
	ledger := cutlist.NewMemoryLedger(reg)
	engine := NewEngine(bofpCatalog(t), NewResolver(), &fakeStock{})
	return NewService(engine, ledger), ledger
}

func ledgerTotals(t *testing.T, ledger *cutlist.MemoryLedger) map[string]int {
	t.Helper()
	entries, err := ledger.List(context.Background())
	require.NoError(t, err)
	totals := map[string]int{}
	for _, e := range entries {
		totals[e.PartName+"/"+e.Color] += e.Quantity
	}
	return totals
}

func TestProcessMergesAllDeltas(t *testing.T) {
	svc, ledger := newProcessingPipeline(t)

	o := Order{ID: 6751598051555, Name: "#1254", LineItems: []LineItem{customLineItem(1)}}
	result, err := svc.Process(context.Background(), o)
	require.NoError(t, err)

	assert.False(t, result.AlreadyProcessed)
	assert.Equal(t, 8, result.Merged)
	assert.Empty(t, result.Warnings)

	totals := ledgerTotals(t, ledger)
	assert.Equal(t, 1, totals["Front Panel/Forest Green"])
	assert.Equal(t, 1, totals["Back Panel/Cheetah"])
	assert.Equal(t, 1, totals["Shoulder Strap/Black"])
	assert.Equal(t, 1, totals["Side Buckle/Silver"])
}

func TestProcessIsIdempotent(t *testing.T) {
	svc, ledger := newProcessingPipeline(t)
	ctx := context.Background()

	o := Order{ID: 99, Name: "#99", LineItems: []LineItem{customLineItem(1)}}
	_, err := svc.Process(ctx, o)
	require.NoError(t, err)
	before := ledgerTotals(t, ledger)

	result, err := svc.Process(ctx, o)
	require.NoError(t, err)
	assert.True(t, result.AlreadyProcessed)
	assert.Zero(t, result.Merged)
	assert.Empty(t, result.Deltas)

	assert.Equal(t, before, ledgerTotals(t, ledger), "replay must not change ledger state")
}

func TestProcessUnknownColorWarnsAndContinues(t *testing.T) {
	svc, ledger := newProcessingPipeline(t)

	item := customLineItem(1)
	// "Vantablack" is not in the color vocabulary; its panel merge must
	// fail loudly while the other seven deltas land.
	item.Properties[1] = Property{Name: "Main Color", Value: "Vantablack"}
	o := Order{ID: 7, Name: "#7", LineItems: []LineItem{item}}

	result, err := svc.Process(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, 7, result.Merged)
	require.Len(t, result.Warnings, 1)
	assert.ErrorIs(t, result.Warnings[0].Err, color.ErrColorNotFound)

	totals := ledgerTotals(t, ledger)
	assert.Zero(t, totals["Front Panel/Vantablack"])
	assert.Equal(t, 1, totals["Back Panel/Cheetah"])
}

func TestProcessRequiresOrderID(t *testing.T) {
	svc, _ := newProcessingPipeline(t)
	_, err := svc.Process(context.Background(), Order{Name: "#0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "order id is required")
}
