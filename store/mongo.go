package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/levankhai101280/burger-builder-2026/models"
)

// MongoOrderStore persists orders in a MongoDB collection
type MongoOrderStore struct {
	Collection *mongo.Collection
}

// NewMongoOrderStore creates a MongoOrderStore backed by the orders collection
func NewMongoOrderStore(client *mongo.Client, database string) *MongoOrderStore {
	collection := client.Database(database).Collection("orders")
	return &MongoOrderStore{
		Collection: collection,
	}
}

// InsertOrder assigns the record id and creation timestamp and writes the
// order as a single document. Both are assigned here in the store adapter,
// never upstream; created_at mirrors the ObjectID's embedded timestamp so
// the two can never disagree about when the record was created.
func (s *MongoOrderStore) InsertOrder(ctx context.Context, order models.Order) (models.Order, error) {
	order.ID = primitive.NewObjectID()
	order.CreatedAt = order.ID.Timestamp().UTC()

	_, err := s.Collection.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, &UnavailableError{Err: err}
	}
	return order, nil
}

// OrdersByUser returns the user's orders sorted newest first
func (s *MongoOrderStore) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.Collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	for cursor.Next(ctx) {
		var order models.Order
		if err := cursor.Decode(&order); err != nil {
			return nil, &UnavailableError{Err: err}
		}
		orders = append(orders, order)
	}
	if err := cursor.Err(); err != nil {
		return nil, &UnavailableError{Err: err}
	}
	return orders, nil
}

// OrderByID returns one of the user's orders by its hex id
func (s *MongoOrderStore) OrderByID(ctx context.Context, userID, orderID string) (models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return models.Order{}, ErrNotFound
	}

	var order models.Order
	err = s.Collection.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, &UnavailableError{Err: err}
	}
	return order, nil
}
