package color

import "context"

// Registry maps human color names to stable identifiers. Resolve is the only
// operation used during order processing; Register is for catalog seeding.
type Registry interface {
	// Resolve returns the id for a color name, or ErrColorNotFound.
	Resolve(ctx context.Context, name string) (int64, error)

	// Register adds a color and returns its id. Registering an existing
	// name returns the existing id.
	Register(ctx context.Context, name, hexCode string) (int64, error)

	// List returns every registered color ordered by name.
	List(ctx context.Context) ([]*Color, error)
}
