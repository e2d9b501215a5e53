package catalog

import (
	"errors"
	"fmt"
)

// ErrBagNotFound is returned when no bag in the catalog matches a name.
var ErrBagNotFound = errors.New("bag not found")

// Panel is a fabric panel cut from a pattern file. ShopMap is the property
// name the storefront uses for this panel's color choice (e.g. "Main Color").
type Panel struct {
	Name     string `yaml:"name" json:"name"`
	ShopMap  string `yaml:"shop_map" json:"shop_map"`
	FilePath string `yaml:"file_path" json:"file_path"`
}

// Zipper is a zipper requirement with a default color.
type Zipper struct {
	Pitch  int    `yaml:"pitch" json:"pitch"`
	Length int    `yaml:"length" json:"length"`
	Color  string `yaml:"color" json:"color"`
	Name   string `yaml:"name" json:"name"`
}

// Buckle is a buckle requirement with a default color.
type Buckle struct {
	Size  int    `yaml:"size" json:"size"`
	Color string `yaml:"color" json:"color"`
	Name  string `yaml:"name" json:"name"`
}

// Webbing is a webbing cut requirement with a default color.
type Webbing struct {
	Width  int    `yaml:"width" json:"width"`
	Length int    `yaml:"length" json:"length"`
	Color  string `yaml:"color" json:"color"`
	Name   string `yaml:"name" json:"name"`
}

// Bag is a manufacturable product defined by its bill of materials.
// Bag names are the match key against order line-item titles.
type Bag struct {
	Name         string    `yaml:"name" json:"name"`
	FabricPanels []Panel   `yaml:"fabric_panels" json:"fabric_panels"`
	Zippers      []Zipper  `yaml:"zippers" json:"zippers"`
	Buckles      []Buckle  `yaml:"buckles" json:"buckles"`
	Webbings     []Webbing `yaml:"webbings" json:"webbings"`
}

// PanelFiles returns the pattern file paths for every fabric panel.
func (b *Bag) PanelFiles() []string {
	files := make([]string, 0, len(b.FabricPanels))
	for _, p := range b.FabricPanels {
		files = append(files, p.FilePath)
	}
	return files
}

// PanelByShopMap returns the panel whose shop property name matches exactly.
func (b *Bag) PanelByShopMap(shopMap string) (*Panel, error) {
	for i := range b.FabricPanels {
		if b.FabricPanels[i].ShopMap == shopMap {
			return &b.FabricPanels[i], nil
		}
	}
	return nil, fmt.Errorf("no panel for shop map %q", shopMap)
}

// Catalog is the immutable set of bag definitions loaded at startup.
type Catalog struct {
	bags  map[string]*Bag
	names []string
}

// NewCatalog builds a catalog from loaded bag definitions. Duplicate bag
// names are rejected so lookups stay unambiguous.
func NewCatalog(bags []*Bag) (*Catalog, error) {
	c := &Catalog{bags: make(map[string]*Bag, len(bags))}
	for _, b := range bags {
		if _, exists := c.bags[b.Name]; exists {
			return nil, fmt.Errorf("duplicate bag name %q", b.Name)
		}
		c.bags[b.Name] = b
		c.names = append(c.names, b.Name)
	}
	return c, nil
}

// Find returns the bag with the given name. The match is exact and
// case-sensitive: line-item titles must equal the configured bag name.
func (c *Catalog) Find(name string) (*Bag, error) {
	b, ok := c.bags[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBagNotFound, name)
	}
	return b, nil
}

// List returns every bag in load order.
func (c *Catalog) List() []*Bag {
	out := make([]*Bag, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.bags[name])
	}
	return out
}

// Len reports the number of bags in the catalog.
func (c *Catalog) Len() int { return len(c.bags) }
