package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/levankhai101280/burger-builder-2026/controllers"
	"github.com/levankhai101280/burger-builder-2026/middleware"
	"github.com/levankhai101280/burger-builder-2026/models"
	"github.com/levankhai101280/burger-builder-2026/orders"
	"github.com/levankhai101280/burger-builder-2026/store"
	"github.com/levankhai101280/burger-builder-2026/utils"
)

// fakeStore is an in-memory OrderStore standing in for MongoDB
type fakeStore struct {
	inserted   []models.Order
	failInsert error
}

func (f *fakeStore) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if f.failInsert != nil {
		return models.Order{}, &store.UnavailableError{Err: f.failInsert}
	}
	order.ID = primitive.NewObjectID()
	order.CreatedAt = order.ID.Timestamp().UTC()
	f.inserted = append(f.inserted, order)
	return order, nil
}

func (f *fakeStore) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for i := len(f.inserted) - 1; i >= 0; i-- {
		if f.inserted[i].UserID == userID {
			out = append(out, f.inserted[i])
		}
	}
	return out, nil
}

func (f *fakeStore) OrderByID(ctx context.Context, userID, orderID string) (models.Order, error) {
	for _, order := range f.inserted {
		if order.UserID == userID && order.ID.Hex() == orderID {
			return order, nil
		}
	}
	return models.Order{}, store.ErrNotFound
}

// testServer wires the builder and order controllers behind the auth
// middleware the way main does, minus the user controller (no database)
func testServer(t *testing.T, st store.OrderStore) (*httptest.Server, string) {
	t.Helper()
	utils.JwtKey = []byte("test-secret")

	sessions := controllers.NewSessions(models.DefaultCatalog)
	builderController := controllers.NewBuilderController(sessions, models.DefaultCatalog)
	orderController := controllers.NewOrderController(sessions, st, "+", utils.NewEmailService("", ""))

	router := mux.NewRouter()
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/builder", builderController.GetBuilder).Methods("GET")
	protected.HandleFunc("/builder/ingredients", builderController.AddIngredient).Methods("POST")
	protected.HandleFunc("/builder/ingredients/{type}", builderController.RemoveIngredient).Methods("DELETE")
	protected.HandleFunc("/cart", builderController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", builderController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/items/{id}", builderController.RemoveFromCart).Methods("DELETE")
	protected.HandleFunc("/checkout", orderController.Checkout).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	token, err := utils.GenerateJWT("user-1", "khai@example.com", "Khai")
	require.NoError(t, err)
	return server, token
}

func doJSON(t *testing.T, method, url, token string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func validCheckoutBody() map[string]interface{} {
	return map[string]interface{}{
		"contact": map[string]interface{}{
			"name":    "Khai Le",
			"phone":   "84 912 345 678",
			"address": "123 Tran Hung Dao, Ha Noi",
			"note":    "ring the bell",
		},
	}
}

func TestBuildCheckoutHistoryRoundTrip(t *testing.T) {
	st := &fakeStore{}
	server, token := testServer(t, st)

	// Build a meat + cheese burger.
	var state struct {
		TotalPrice float64                       `json:"total_price"`
		Counts     map[models.IngredientKind]int `json:"counts"`
	}
	resp := doJSON(t, "POST", server.URL+"/builder/ingredients", token, map[string]string{"type": "meat"}, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, "POST", server.URL+"/builder/ingredients", token, map[string]string{"type": "cheese"}, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.InDelta(t, 1.7, state.TotalPrice, 0.0001)

	// Add it to the cart; the builder resets.
	var cart struct {
		TotalPrice float64 `json:"total_price"`
		TotalItems int     `json:"total_items"`
	}
	resp = doJSON(t, "POST", server.URL+"/cart", token, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, cart.TotalItems)
	assert.InDelta(t, 1.7, cart.TotalPrice, 0.0001)

	resp = doJSON(t, "GET", server.URL+"/builder", token, nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, state.TotalPrice)

	// Checkout succeeds and clears the cart.
	var placed struct {
		OrderID string `json:"order_id"`
	}
	resp = doJSON(t, "POST", server.URL+"/checkout", token, validCheckoutBody(), &placed)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, placed.OrderID)

	resp = doJSON(t, "GET", server.URL+"/cart", token, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, cart.TotalItems)

	// The order shows up in history, normalized.
	var history []orders.HistoryEntry
	resp = doJSON(t, "GET", server.URL+"/orders", token, nil, &history)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, history, 1)
	assert.Equal(t, placed.OrderID, history[0].ID)
	assert.Equal(t, 1, history[0].ItemCount)
	assert.InDelta(t, 1.7, history[0].TotalPrice, 0.0001)
	assert.Equal(t, models.OrderStatusPending, history[0].Status)
	// Email comes from the token, not the payload.
	assert.Equal(t, "khai@example.com", history[0].Contact.Email)

	// Detail view agrees with the summary.
	var detail orders.HistoryEntry
	resp = doJSON(t, "GET", server.URL+"/orders/"+placed.OrderID, token, nil, &detail)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, history[0].Items, detail.Items)
}

func TestCheckoutWithBurgerStillInBuilder(t *testing.T) {
	server, token := testServer(t, &fakeStore{})

	resp := doJSON(t, "POST", server.URL+"/builder/ingredients", token, map[string]string{"type": "bacon"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The cart is empty but a burger is mid-build: distinct guidance.
	resp = doJSON(t, "POST", server.URL+"/checkout", token, validCheckoutBody(), nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutStoreFailureKeepsCart(t *testing.T) {
	st := &fakeStore{failInsert: errors.New("connection reset")}
	server, token := testServer(t, st)

	resp := doJSON(t, "POST", server.URL+"/builder/ingredients", token, map[string]string{"type": "meat"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = doJSON(t, "POST", server.URL+"/cart", token, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, "POST", server.URL+"/checkout", token, validCheckoutBody(), nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	// The cart survives the failed write for a retry.
	var cart struct {
		TotalItems int `json:"total_items"`
	}
	resp = doJSON(t, "GET", server.URL+"/cart", token, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestAddToCartRejectsEmptyBuilder(t *testing.T) {
	server, token := testServer(t, &fakeStore{})

	resp := doJSON(t, "POST", server.URL+"/cart", token, nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemoveIngredientEndpointIsLIFOPerKind(t *testing.T) {
	server, token := testServer(t, &fakeStore{})

	for _, kind := range []string{"salad", "cheese", "meat", "cheese"} {
		resp := doJSON(t, "POST", server.URL+"/builder/ingredients", token, map[string]string{"type": kind}, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var state struct {
		Layers []models.Layer `json:"layers"`
	}
	resp := doJSON(t, "DELETE", server.URL+"/builder/ingredients/cheese", token, nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, state.Layers, 3)
	assert.Equal(t, models.IngredientCheese, state.Layers[1].Kind)

	// Removing a kind that is not there changes nothing.
	resp = doJSON(t, "DELETE", server.URL+"/builder/ingredients/bacon", token, nil, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, state.Layers, 3)
}

func TestEndpointsRequireAuth(t *testing.T) {
	server, _ := testServer(t, &fakeStore{})

	req, err := http.NewRequest("GET", server.URL+"/orders", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRemoveFromCartByID(t *testing.T) {
	server, token := testServer(t, &fakeStore{})

	resp := doJSON(t, "POST", server.URL+"/builder/ingredients", token, map[string]string{"type": "meat"}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cart struct {
		Items      []models.CartItem `json:"items"`
		TotalItems int               `json:"total_items"`
	}
	resp = doJSON(t, "POST", server.URL+"/cart", token, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, cart.Items, 1)

	resp = doJSON(t, "DELETE", server.URL+"/cart/items/"+cart.Items[0].ID, token, nil, &cart)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, cart.TotalItems)
}
