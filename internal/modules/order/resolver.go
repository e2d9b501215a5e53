package order

// DefaultThreshold is the minimum similarity score for a shop label to be
// considered a match against an order property name.
const DefaultThreshold = 0.4

// Resolver fuzzy-matches a bag's shop labels against the free-form property
// names on an order line item. Storefront property names are operator-typed
// and rarely equal the catalog's canonical labels verbatim; exact matching
// would silently drop legitimate customizations.
type Resolver struct {
	threshold float64
}

// NewResolver creates a resolver with the default acceptance threshold.
func NewResolver() *Resolver { return &Resolver{threshold: DefaultThreshold} }

// NewResolverWithThreshold creates a resolver with a custom threshold.
func NewResolverWithThreshold(threshold float64) *Resolver {
	return &Resolver{threshold: threshold}
}

// Resolve returns the value of the property whose name scores highest
// against the shop label. Ties go to the earliest property in declared
// order. A best score below the threshold, or an empty property list,
// returns ok=false — callers fall back to the requirement's default color,
// this is not an error.
func (r *Resolver) Resolve(shopLabel string, props Properties) (string, bool) {
	best := -1.0
	value := ""
	for _, prop := range props {
		score := similarity(shopLabel, prop.Name)
		if score > best {
			best = score
			value = prop.Value
		}
	}
	if best < r.threshold {
		return "", false
	}
	return value, true
}
