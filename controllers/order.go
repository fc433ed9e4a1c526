// controllers/order.go
package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/levankhai101280/burger-builder-2026/checkout"
	"github.com/levankhai101280/burger-builder-2026/middleware"
	"github.com/levankhai101280/burger-builder-2026/models"
	"github.com/levankhai101280/burger-builder-2026/orders"
	"github.com/levankhai101280/burger-builder-2026/store"
	"github.com/levankhai101280/burger-builder-2026/utils"
)

// OrderController handles checkout and order history requests
type OrderController struct {
	Sessions     *Sessions
	Submitter    *checkout.Submitter
	History      *orders.History
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(sessions *Sessions, st store.OrderStore, dialPrefix string, emailService *utils.EmailService) *OrderController {
	return &OrderController{
		Sessions:     sessions,
		Submitter:    checkout.NewSubmitter(st, dialPrefix),
		History:      orders.NewHistory(st),
		EmailService: emailService,
	}
}

// Checkout submits the user's cart as a new order
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req struct {
		Contact models.Contact `json:"contact"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	identity := checkout.Identity{
		UserID:      claims.UserID,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}
	sess := oc.Sessions.For(claims.UserID)

	// Validate and snapshot under the session lock, write without it, and
	// clear only once the store has acknowledged the order. A failed or
	// cancelled write leaves the cart and builder untouched.
	var order models.Order
	err := sess.Update(func(comp *models.Composition, cart *models.Cart) error {
		var err error
		order, err = oc.Submitter.Prepare(identity, cart, comp, req.Contact)
		return err
	})
	if err != nil {
		oc.writeCheckoutError(w, err)
		return
	}

	saved, err := oc.Submitter.Submit(r.Context(), order)
	if err != nil {
		oc.writeCheckoutError(w, err)
		return
	}

	sess.Update(func(comp *models.Composition, cart *models.Cart) error {
		cart.Clear()
		comp.Reset()
		return nil
	})

	go func(toEmail, displayName string, order models.Order) {
		if err := oc.EmailService.SendOrderConfirmationEmail(toEmail, displayName, order); err != nil {
			log.Printf("Failed to send email to %s: %v", toEmail, err)
		}
	}(identity.Email, identity.DisplayName, saved)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"order_id":   saved.ID.Hex(),
		"created_at": saved.CreatedAt,
		"message":    "Order placed successfully.",
	})
}

// writeCheckoutError maps a checkout failure to the response the UI needs
// to choose between fix-and-resubmit and retry messaging
func (oc *OrderController) writeCheckoutError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrAuthRequired):
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	case checkout.IsValidation(err):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case store.IsUnavailable(err):
		log.Printf("Checkout write failed: %v", err)
		http.Error(w, "Could not reach the order store. Your cart is unchanged, please try again.", http.StatusServiceUnavailable)
	default:
		log.Printf("Checkout failed: %v", err)
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
	}
}

// GetOrders retrieves the authenticated user's normalized order history,
// newest first, optionally filtered by the q query parameter
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entries, err := oc.History.Load(r.Context(), claims.UserID)
	if err != nil {
		log.Printf("Failed to load orders for %s: %v", claims.UserID, err)
		http.Error(w, "Failed to retrieve orders", http.StatusServiceUnavailable)
		return
	}
	entries = orders.Search(entries, r.URL.Query().Get("q"))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// GetOrder retrieves one normalized order for the detail view
func (oc *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entry, err := oc.History.Get(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if errors.Is(err, store.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Printf("Failed to load order for %s: %v", claims.UserID, err)
		http.Error(w, "Failed to retrieve order", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entry)
}
