package inventory

import "context"

// Repository answers stock questions for finished, ready-to-ship goods.
// Matching is by substring on the stored item name for both the name and the
// color, since finished-goods rows are labelled free-form ("B.O.F.P Black").
type Repository interface {
	// Count returns the total on-hand quantity matching name and color.
	Count(ctx context.Context, name, colorName string) (int, error)

	// MinThreshold returns the configured minimum stock level for the
	// (name, color) pair, or zero when none is configured.
	MinThreshold(ctx context.Context, name, colorName string) (int, error)
}
