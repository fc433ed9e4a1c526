package models

import (
	"errors"

	"github.com/google/uuid"
)

// ErrEmptyComposition is returned when an empty composition is added to the cart
var ErrEmptyComposition = errors.New("composition has no layers")

// CartItem is an immutable snapshot of a finished composition. The price is
// captured when the item is frozen and is never recomputed, so a later
// catalog change cannot alter what the customer was quoted.
type CartItem struct {
	ID     string  `bson:"id" json:"id"`
	Layers []Layer `bson:"layers" json:"layers"`
	Price  float64 `bson:"price" json:"price"`
}

// IngredientCounts summarizes the item's layers as a kind-to-count map
func (ci CartItem) IngredientCounts() map[IngredientKind]int {
	counts := make(map[IngredientKind]int)
	for _, layer := range ci.Layers {
		counts[layer.Kind]++
	}
	return counts
}

// Cart holds the finished burgers awaiting checkout, in the order they were added
type Cart struct {
	items []CartItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddItem freezes the composition into a new cart item and appends it.
// An empty composition is rejected with ErrEmptyComposition and the cart is
// left unchanged. The caller is expected to reset the composition afterward.
func (c *Cart) AddItem(comp *Composition) (CartItem, error) {
	if comp == nil || comp.Empty() {
		return CartItem{}, ErrEmptyComposition
	}
	item := CartItem{
		ID:     uuid.NewString(),
		Layers: comp.Layers(),
		Price:  comp.Price(),
	}
	c.items = append(c.items, item)
	return item, nil
}

// RemoveItem removes the item with the given id. Removing an unknown id is a
// no-op; the ids and order of the remaining items never change.
func (c *Cart) RemoveItem(id string) {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of the cart contents in insertion order
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// TotalPrice returns the sum of the frozen item prices
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.items {
		total += item.Price
	}
	return total
}

// ItemCount returns the number of items in the cart
func (c *Cart) ItemCount() int {
	return len(c.items)
}

// Clear empties the cart, called after a successful checkout
func (c *Cart) Clear() {
	c.items = nil
}
