package order

import (
	"context"

	"github.com/bullmose/cutlist-backend/internal/modules/catalog"
	"github.com/bullmose/cutlist-backend/internal/modules/cutlist"
)

// StockChecker answers whether a finished item is stocked above its minimum.
// Satisfied by the inventory service; the check is advisory.
type StockChecker interface {
	CheckStock(ctx context.Context, name, colorName string) error
}

// Engine translates an order into cut-list deltas by matching line items
// against the bag catalog's bills of materials.
type Engine struct {
	catalog  *catalog.Catalog
	resolver *Resolver
	stock    StockChecker
}

// NewEngine creates a decomposition engine. All collaborators are injected;
// the engine holds no mutable state and is safe for concurrent use.
func NewEngine(cat *catalog.Catalog, resolver *Resolver, stock StockChecker) *Engine {
	return &Engine{catalog: cat, resolver: resolver, stock: stock}
}

// Decompose produces the cut-list deltas for one order plus warnings for
// every line item that could not be handled. A bad line item never aborts
// its siblings: a single wrong SKU must not block the rest of the order.
//
// Quantity semantics follow the shop's cutting workflow: fabric panels are
// emitted once per line item regardless of ordered quantity, while webbing,
// zippers, and buckles are emitted once per ordered unit.
func (e *Engine) Decompose(ctx context.Context, o Order) ([]cutlist.Delta, []Warning) {
	var deltas []cutlist.Delta
	var warnings []Warning

	for _, item := range o.LineItems {
		if len(item.Properties) == 0 {
			warnings = append(warnings, newWarning(item.Title, ErrMissingProperties))
			continue
		}

		colorSet, ok := item.Properties.Get(PropColorSet)
		if !ok {
			warnings = append(warnings, newWarning(item.Title, ErrMissingColorSet))
			continue
		}

		if colorSet != ColorSetCustom {
			// Ready to ship: no cutting, just verify finished stock.
			if err := e.stock.CheckStock(ctx, item.Title, colorSet); err != nil {
				warnings = append(warnings, newWarning(item.Title, err))
			}
			continue
		}

		bag, err := e.catalog.Find(item.Title)
		if err != nil {
			warnings = append(warnings, newWarning(item.Title, err))
			continue
		}

		deltas = append(deltas, e.decomposeBag(bag, item)...)
	}

	return deltas, warnings
}

func (e *Engine) decomposeBag(bag *catalog.Bag, item LineItem) []cutlist.Delta {
	var deltas []cutlist.Delta

	for _, panel := range bag.FabricPanels {
		clr := DefaultPanelColor
		if v, ok := e.resolver.Resolve(panel.ShopMap, item.Properties); ok {
			clr = v
		}
		deltas = append(deltas, cutlist.Delta{
			PartName: panel.Name,
			FilePath: panel.FilePath,
			Color:    clr,
			Quantity: 1,
		})
	}

	qty := item.Quantity
	if qty < 1 {
		qty = 1
	}

	for _, webbing := range bag.Webbings {
		clr := webbing.Color
		if v, ok := item.Properties.Get(PropStrapColor); ok {
			clr = v
		}
		deltas = append(deltas, hardwareDeltas(webbing.Name, clr, qty)...)
	}

	for _, zipper := range bag.Zippers {
		clr := zipper.Color
		if v, ok := item.Properties.Get(PropZipperColor); ok {
			clr = v
		}
		deltas = append(deltas, hardwareDeltas(zipper.Name, clr, qty)...)
	}

	for _, buckle := range bag.Buckles {
		clr := buckle.Color
		if v, ok := item.Properties.Get(PropBuckleColor); ok {
			clr = v
		}
		deltas = append(deltas, hardwareDeltas(buckle.Name, clr, qty)...)
	}

	return deltas
}

// hardwareDeltas emits one unit delta per ordered unit. Non-panel materials
// have no pattern file, marked "-" on the cut list.
func hardwareDeltas(name, clr string, qty int) []cutlist.Delta {
	deltas := make([]cutlist.Delta, 0, qty)
	for i := 0; i < qty; i++ {
		deltas = append(deltas, cutlist.Delta{
			PartName: name,
			FilePath: "-",
			Color:    clr,
			Quantity: 1,
		})
	}
	return deltas
}
