package cutlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bullmose/cutlist-backend/internal/modules/color"
)

func TestMarkCutDefaultsToOne(t *testing.T) {
	reg := color.NewMemoryRegistry()
	_, err := reg.Register(context.Background(), "Black", "")
	require.NoError(t, err)
	ledger := NewMemoryLedger(reg)
	svc := NewService(ledger)
	ctx := context.Background()

	require.NoError(t, ledger.Merge(ctx, Delta{PartName: "Strap", FilePath: "-", Color: "Black", Quantity: 3}))
	entries, err := svc.Report(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	require.NoError(t, svc.MarkCut(ctx, entries[0].ID, 0))
	entries, err = svc.Report(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
}

func TestMarkCutRejectsNegative(t *testing.T) {
	ledger := NewMemoryLedger(color.NewMemoryRegistry())
	svc := NewService(ledger)
	err := svc.MarkCut(context.Background(), 1, -2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive")
}
