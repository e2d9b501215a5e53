package color

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// seedFile matches the colors config file shape:
//
//	colors:
//	  - {name: "Forest Green", hex: "#228B22"}
type seedFile struct {
	Colors []struct {
		Name string `yaml:"name"`
		Hex  string `yaml:"hex"`
	} `yaml:"colors"`
}

// SeedFromFile registers every color listed in a YAML config file. Existing
// names are updated in place, so re-running at startup is harmless.
func SeedFromFile(ctx context.Context, reg Registry, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read colors config: %w", err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return 0, fmt.Errorf("parse colors config: %w", err)
	}
	for _, c := range seed.Colors {
		if _, err := reg.Register(ctx, c.Name, c.Hex); err != nil {
			return 0, fmt.Errorf("seed color %q: %w", c.Name, err)
		}
	}
	return len(seed.Colors), nil
}
