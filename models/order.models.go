package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Status transitions after insert are owned by the
// back office, not this service.
const OrderStatusPending = "pending"

// GeoPoint is the delivery location picked on the map by the client
type GeoPoint struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Contact holds the delivery contact details attached to an order. Email is
// always the authenticated identity's email, never user-supplied.
type Contact struct {
	Name     string    `bson:"name" json:"name"`
	Email    string    `bson:"email" json:"email"`
	Phone    string    `bson:"phone" json:"phone"`
	Address  string    `bson:"address" json:"address"`
	Note     string    `bson:"note,omitempty" json:"note,omitempty"`
	Location *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
}

// OrderItem is one burger inside a persisted order
type OrderItem struct {
	Price       float64                `bson:"price" json:"price"`
	Ingredients map[IngredientKind]int `bson:"ingredients" json:"ingredients"`
	Layers      []Layer                `bson:"layers,omitempty" json:"layers,omitempty"`
}

// OrderData is the nested payload of a current-shape order document.
// Ingredients without CartItems appears only in records written during the
// single-burger-to-multi-burger transition.
type OrderData struct {
	CartItems   []OrderItem            `bson:"cart_items,omitempty" json:"cart_items,omitempty"`
	Ingredients map[IngredientKind]int `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	TotalPrice  *float64               `bson:"total_price,omitempty" json:"total_price,omitempty"`
	TotalItems  *int                   `bson:"total_items,omitempty" json:"total_items,omitempty"`
}

// Order is a persisted order document. New orders always carry OrderData;
// the root-level Ingredients and TotalPrice fields exist so that legacy
// single-burger documents still decode. This service never writes the
// legacy fields.
type Order struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string                 `bson:"user_id" json:"user_id"`
	OrderData   *OrderData             `bson:"order_data,omitempty" json:"order_data,omitempty"`
	Ingredients map[IngredientKind]int `bson:"ingredients,omitempty" json:"ingredients,omitempty"`
	TotalPrice  *float64               `bson:"total_price,omitempty" json:"total_price,omitempty"`
	Contact     Contact                `bson:"contact" json:"contact"`
	Status      string                 `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt   time.Time              `bson:"created_at" json:"created_at"`
}
