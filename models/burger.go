package models

// Layer is one unit of a single ingredient inside a burger
type Layer struct {
	Kind IngredientKind `bson:"type" json:"type"`
}

// Composition is the burger currently being assembled. Layer order is the
// visual stacking order; pricing does not depend on it.
type Composition struct {
	catalog Catalog
	layers  []Layer
}

// NewComposition creates an empty composition priced against catalog
func NewComposition(catalog Catalog) *Composition {
	return &Composition{catalog: catalog}
}

// AddLayer appends one layer of kind to the top of the stack
func (c *Composition) AddLayer(kind IngredientKind) {
	c.layers = append(c.layers, Layer{Kind: kind})
}

// RemoveLayer removes the most recently added layer of kind, leaving the
// relative order of every other layer intact. Removing a kind that is not
// present is a no-op.
func (c *Composition) RemoveLayer(kind IngredientKind) {
	for i := len(c.layers) - 1; i >= 0; i-- {
		if c.layers[i].Kind == kind {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			return
		}
	}
}

// Price returns the sum of the unit prices of the current layers
func (c *Composition) Price() float64 {
	total := 0.0
	for _, layer := range c.layers {
		total += c.catalog.PriceOf(layer.Kind)
	}
	return total
}

// Layers returns a copy of the current layer stack, bottom first
func (c *Composition) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)
	return out
}

// LayerCount returns the number of layers currently stacked
func (c *Composition) LayerCount() int {
	return len(c.layers)
}

// Empty reports whether no layers have been added yet
func (c *Composition) Empty() bool {
	return len(c.layers) == 0
}

// IngredientCounts summarizes the stack as a kind-to-count map
func (c *Composition) IngredientCounts() map[IngredientKind]int {
	counts := make(map[IngredientKind]int)
	for _, layer := range c.layers {
		counts[layer.Kind]++
	}
	return counts
}

// Reset clears all layers, called after the burger is added to the cart
func (c *Composition) Reset() {
	c.layers = nil
}
