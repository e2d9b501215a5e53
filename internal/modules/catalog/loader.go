package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// bagDocument is one YAML document in a bags config file. Bag configs are a
// multi-document stream, one bag per document, each wrapped in a "bag" key.
type bagDocument struct {
	Bag *Bag `yaml:"bag"`
}

// Load reads a multi-document YAML stream of bag definitions and builds a
// catalog. Documents without a "bag" key are skipped rather than treated as
// fatal, so unrelated documents can live in the same file.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	var bags []*Bag
	for {
		var doc bagDocument
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse bag config: %w", err)
		}
		if doc.Bag == nil {
			continue
		}
		if doc.Bag.Name == "" {
			return nil, fmt.Errorf("bag config document missing name")
		}
		bags = append(bags, doc.Bag)
	}
	return NewCatalog(bags)
}

// LoadFile loads a catalog from a bags config file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bag config: %w", err)
	}
	defer f.Close()
	return Load(f)
}
