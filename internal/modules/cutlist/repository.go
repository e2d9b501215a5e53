package cutlist

import "context"

// Ledger is the aggregation store behind the cut list. Implementations must
// serialize Merge and Decrement on the same (part, file, color) key and make
// RecordOrder's existence check plus insert a single atomic unit; concurrent
// operations on different keys may proceed independently.
type Ledger interface {
	// RecordOrder stores an order id with a snapshot of its payload.
	// It returns false when the id was seen before, in which case the
	// order must not be decomposed again.
	RecordOrder(ctx context.Context, orderID int64, payload []byte) (bool, error)

	// Merge folds one delta into the ledger: the delta's color is resolved
	// through the color registry (color.ErrColorNotFound on failure, with
	// no partial entry written), then the quantity is added to the row
	// keyed by (part name, file path, color id), inserting it if absent.
	Merge(ctx context.Context, d Delta) error

	// Decrement subtracts quantity from an entry. A result of zero or
	// below deletes the entry; a missing entry is ErrEntryNotFound.
	Decrement(ctx context.Context, entryID int64, quantity int) error

	// List returns a consistent snapshot of the cut list with color names
	// joined in, ordered by part name then color.
	List(ctx context.Context) ([]*Entry, error)
}
