// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"github.com/levankhai101280/burger-builder-2026/controllers"
	"github.com/levankhai101280/burger-builder-2026/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, userController *controllers.UserController, builderController *controllers.BuilderController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/register", userController.Register).Methods("POST")
	router.HandleFunc("/login", userController.Login).Methods("POST")

	// Everything below requires an authenticated customer
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")

	// Builder routes
	protected.HandleFunc("/builder", builderController.GetBuilder).Methods("GET")
	protected.HandleFunc("/builder", builderController.ResetBuilder).Methods("DELETE")
	protected.HandleFunc("/builder/ingredients", builderController.AddIngredient).Methods("POST")
	protected.HandleFunc("/builder/ingredients/{type}", builderController.RemoveIngredient).Methods("DELETE")

	// Cart routes
	protected.HandleFunc("/cart", builderController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", builderController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart/items/{id}", builderController.RemoveFromCart).Methods("DELETE")

	// Checkout and order history routes
	protected.HandleFunc("/checkout", orderController.Checkout).Methods("POST")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")
}
