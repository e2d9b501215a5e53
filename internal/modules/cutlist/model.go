package cutlist

import (
	"errors"
	"time"
)

// ErrEntryNotFound is returned when a decrement targets a cut-list row that
// does not exist (already cut, or never merged).
var ErrEntryNotFound = errors.New("cut list entry not found")

// Delta is one unit of contribution to the cut list: a part in a color, with
// the pattern file to cut it from ("-" for pulled hardware and webbing).
type Delta struct {
	PartName string `json:"part_name"`
	FilePath string `json:"file_path"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// Entry is an aggregated cut-list row. Quantity is strictly positive while
// the entry exists; a decrement that reaches zero removes the row entirely.
type Entry struct {
	ID        int64     `json:"id"`
	PartName  string    `json:"part_name"`
	FilePath  string    `json:"file_path"`
	ColorID   int64     `json:"color_id"`
	Color     string    `json:"color"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DecrementRequest is the payload for marking part of an entry as cut.
type DecrementRequest struct {
	Quantity int `json:"quantity"`
}
