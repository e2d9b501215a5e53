package order

import (
	"errors"
	"time"
)

// Data errors for a single line item. They are reported as warnings on the
// processing result, never aborting sibling items in the same order.
var (
	ErrMissingProperties = errors.New("line item has no properties")
	ErrMissingColorSet   = errors.New("line item has no Color Set property")
)

// Well-known property names coming from the storefront order form.
const (
	PropColorSet    = "Color Set"
	PropStrapColor  = "Strap Color"
	PropZipperColor = "Zipper Color"
	PropBuckleColor = "Buckle Color"

	// ColorSetCustom selects bill-of-materials decomposition; any other
	// Color Set value means the item ships from finished stock.
	ColorSetCustom = "Custom"

	// DefaultPanelColor is the placeholder used when no order property
	// matches a panel's shop label. Panels have no intrinsic default.
	DefaultPanelColor = "Default Color"
)

// Property is one free-form name/value pair on a line item, as typed by the
// operator into the storefront order form.
type Property struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Properties preserves the order the storefront sent, which makes fuzzy
// tie-breaks deterministic (first declared key wins).
type Properties []Property

// Get returns the value for an exact property name match.
func (p Properties) Get(name string) (string, bool) {
	for _, prop := range p {
		if prop.Name == name {
			return prop.Value, true
		}
	}
	return "", false
}

// LineItem is one purchased product within an order. Title must equal a bag
// name in the catalog for custom items.
type LineItem struct {
	ID         int64      `json:"id" yaml:"id"`
	Title      string     `json:"title" yaml:"title"`
	Quantity   int        `json:"quantity" yaml:"quantity"`
	Properties Properties `json:"properties" yaml:"properties"`
}

// Order is one incoming storefront order. ID is the platform's stable order
// id; Name is the human-readable order number ("#1254").
type Order struct {
	ID        int64      `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	CreatedAt time.Time  `json:"created_at" yaml:"created_at"`
	LineItems []LineItem `json:"line_items" yaml:"line_items"`
}

// Warning reports a per-line-item problem with enough context for the
// operator to fix the source data.
type Warning struct {
	ItemTitle string `json:"item_title"`
	Reason    string `json:"reason"`
	Err       error  `json:"-"`
}

func newWarning(itemTitle string, err error) Warning {
	return Warning{ItemTitle: itemTitle, Reason: err.Error(), Err: err}
}
