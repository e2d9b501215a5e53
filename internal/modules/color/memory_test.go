package color

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndResolve(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	id, err := reg.Register(ctx, "Forest Green", "#228B22")
	require.NoError(t, err)

	resolved, err := reg.Resolve(ctx, "Forest Green")
	require.NoError(t, err)
	assert.Equal(t, id, resolved)
}

func TestResolveUnknownColor(t *testing.T) {
	reg := NewMemoryRegistry()
	_, err := reg.Resolve(context.Background(), "Vantablack")
	require.ErrorIs(t, err, ErrColorNotFound)
}

func TestRegisterExistingKeepsID(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()

	first, err := reg.Register(ctx, "Black", "#000")
	require.NoError(t, err)
	second, err := reg.Register(ctx, "Black", "#000000")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	colors, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, colors, 1)
	assert.Equal(t, "#000000", colors[0].HexCode)
}

func TestListSortsByName(t *testing.T) {
	reg := NewMemoryRegistry()
	ctx := context.Background()
	for _, name := range []string{"Pink", "Black", "Orange"} {
		_, err := reg.Register(ctx, name, "")
		require.NoError(t, err)
	}

	colors, err := reg.List(ctx)
	require.NoError(t, err)
	require.Len(t, colors, 3)
	assert.Equal(t, "Black", colors[0].Name)
	assert.Equal(t, "Orange", colors[1].Name)
	assert.Equal(t, "Pink", colors[2].Name)
}
