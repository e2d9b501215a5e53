package inventory

import "errors"

// ErrInsufficientStock signals that a ready-to-ship item is below its
// configured minimum. It is advisory: the operator restocks, the order
// pipeline keeps moving.
var ErrInsufficientStock = errors.New("insufficient stock")

// Level is the on-hand count for a finished item in one color, alongside the
// minimum the shop wants to keep in stock.
type Level struct {
	ItemName string `json:"item_name"`
	Color    string `json:"color"`
	OnHand   int    `json:"on_hand"`
	Minimum  int    `json:"minimum"`
}
