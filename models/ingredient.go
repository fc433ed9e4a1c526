package models

// IngredientKind identifies one ingredient on the menu
type IngredientKind string

const (
	IngredientSalad  IngredientKind = "salad"
	IngredientBacon  IngredientKind = "bacon"
	IngredientCheese IngredientKind = "cheese"
	IngredientMeat   IngredientKind = "meat"
)

// IngredientKinds lists every ingredient in display order
var IngredientKinds = []IngredientKind{
	IngredientSalad,
	IngredientBacon,
	IngredientCheese,
	IngredientMeat,
}

// Catalog maps each ingredient kind to its unit price
type Catalog map[IngredientKind]float64

// DefaultCatalog holds the fixed menu prices
var DefaultCatalog = Catalog{
	IngredientSalad:  0.5,
	IngredientBacon:  0.7,
	IngredientCheese: 0.4,
	IngredientMeat:   1.3,
}

// PriceOf returns the unit price for kind, 0 for unknown kinds
func (c Catalog) PriceOf(kind IngredientKind) float64 {
	return c[kind]
}

// Has reports whether kind is part of the catalog
func (c Catalog) Has(kind IngredientKind) bool {
	_, ok := c[kind]
	return ok
}
