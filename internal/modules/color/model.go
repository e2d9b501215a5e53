package color

import (
	"errors"
	"time"
)

// ErrColorNotFound is returned when a color name is not in the registry.
// Unknown colors are a hard error during order processing: silently creating
// them would mask data-entry mistakes upstream.
var ErrColorNotFound = errors.New("color not found")

// Color is one entry in the controlled color vocabulary.
type Color struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	HexCode   string    `json:"hex_code,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
