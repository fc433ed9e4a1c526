package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/levankhai101280/burger-builder-2026/middleware"
	"github.com/levankhai101280/burger-builder-2026/models"
)

// BuilderController handles burger building and cart requests
type BuilderController struct {
	Sessions *Sessions
	Catalog  models.Catalog
}

// NewBuilderController creates a new BuilderController
func NewBuilderController(sessions *Sessions, catalog models.Catalog) *BuilderController {
	return &BuilderController{
		Sessions: sessions,
		Catalog:  catalog,
	}
}

// builderState is the live view of the burger being built
type builderState struct {
	Layers     []models.Layer                `json:"layers"`
	Counts     map[models.IngredientKind]int `json:"counts"`
	TotalPrice float64                       `json:"total_price"`
}

// cartView is the cart summary returned to the UI
type cartView struct {
	Items      []models.CartItem `json:"items"`
	TotalPrice float64           `json:"total_price"`
	TotalItems int               `json:"total_items"`
}

func stateOf(comp *models.Composition) builderState {
	return builderState{
		Layers:     comp.Layers(),
		Counts:     comp.IngredientCounts(),
		TotalPrice: comp.Price(),
	}
}

func viewOf(cart *models.Cart) cartView {
	return cartView{
		Items:      cart.Items(),
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.ItemCount(),
	}
}

// GetBuilder returns the current builder state for display
func (bc *BuilderController) GetBuilder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var state builderState
	bc.Sessions.For(claims.UserID).View(func(comp *models.Composition, cart *models.Cart) {
		state = stateOf(comp)
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// AddIngredient appends one layer of the requested kind to the burger
func (bc *BuilderController) AddIngredient(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Type models.IngredientKind `json:"type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !bc.Catalog.Has(req.Type) {
		http.Error(w, "Unknown ingredient", http.StatusBadRequest)
		return
	}

	var state builderState
	bc.Sessions.For(claims.UserID).Update(func(comp *models.Composition, cart *models.Cart) error {
		comp.AddLayer(req.Type)
		state = stateOf(comp)
		return nil
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// RemoveIngredient removes the most recently added layer of the given kind.
// Removing a kind that is not on the burger succeeds without changing anything.
func (bc *BuilderController) RemoveIngredient(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	kind := models.IngredientKind(mux.Vars(r)["type"])
	if !bc.Catalog.Has(kind) {
		http.Error(w, "Unknown ingredient", http.StatusBadRequest)
		return
	}

	var state builderState
	bc.Sessions.For(claims.UserID).Update(func(comp *models.Composition, cart *models.Cart) error {
		comp.RemoveLayer(kind)
		state = stateOf(comp)
		return nil
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// ResetBuilder discards the burger currently being built
func (bc *BuilderController) ResetBuilder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var state builderState
	bc.Sessions.For(claims.UserID).Update(func(comp *models.Composition, cart *models.Cart) error {
		comp.Reset()
		state = stateOf(comp)
		return nil
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(state)
}

// AddToCart freezes the current burger into the cart and resets the builder
func (bc *BuilderController) AddToCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var view cartView
	err := bc.Sessions.For(claims.UserID).Update(func(comp *models.Composition, cart *models.Cart) error {
		if _, err := cart.AddItem(comp); err != nil {
			return err
		}
		comp.Reset()
		view = viewOf(cart)
		return nil
	})
	if errors.Is(err, models.ErrEmptyComposition) {
		http.Error(w, "Add at least one ingredient before adding the burger to the cart", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// GetCart retrieves the user's cart
func (bc *BuilderController) GetCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var view cartView
	bc.Sessions.For(claims.UserID).View(func(comp *models.Composition, cart *models.Cart) {
		view = viewOf(cart)
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// RemoveFromCart removes one item from the user's cart by id
func (bc *BuilderController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["id"]
	var view cartView
	bc.Sessions.For(claims.UserID).Update(func(comp *models.Composition, cart *models.Cart) error {
		cart.RemoveItem(itemID)
		view = viewOf(cart)
		return nil
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}
