// Package cart holds per-session view state: the selected mood and the
// cart line items. Nothing here is persisted; a session's cart lives in
// memory until the process restarts.
package cart

import (
	"errors"

	"github.com/samber/lo"

	"snackmatch/internal/catalog"
)

// ErrNegativeQuantity rejects UpdateQuantity calls below zero; zero
// itself means remove.
var ErrNegativeQuantity = errors.New("quantity cannot be negative")

type LineItem struct {
	catalog.Snack
	Quantity int    `json:"quantity"`
	Image    string `json:"image,omitempty"`
}

type Cart struct {
	SelectedMood string     `json:"selectedMood,omitempty"`
	Items        []LineItem `json:"items"`
}

// SelectMood changes the mood without touching the cart.
func (c *Cart) SelectMood(moodID string) {
	c.SelectedMood = moodID
}

// Add puts a snack in the cart. A repeat add of the same id bumps the
// quantity and leaves the stored image untouched; a first add inserts
// with quantity 1 carrying whatever image URL the caller had, possibly
// none.
func (c *Cart) Add(s catalog.Snack, imageURL string) {
	for i := range c.Items {
		if c.Items[i].ID == s.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, LineItem{Snack: s, Quantity: 1, Image: imageURL})
}

// UpdateQuantity sets a line item's quantity. Zero removes the item;
// updating an id that isn't in the cart is a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) error {
	if quantity < 0 {
		return ErrNegativeQuantity
	}
	if quantity == 0 {
		c.Remove(id)
		return nil
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Remove deletes the line item if present.
func (c *Cart) Remove(id string) {
	c.Items = lo.Reject(c.Items, func(item LineItem, _ int) bool {
		return item.ID == id
	})
}

// Total derives the cart total; it is never stored.
func (c *Cart) Total() int {
	return lo.SumBy(c.Items, func(item LineItem) int {
		return item.Price * item.Quantity
	})
}
