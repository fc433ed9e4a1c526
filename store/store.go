// Package store abstracts the persistent order store. The abstraction keeps
// the database driver out of the checkout and history logic and lets tests
// substitute an in-memory implementation.
package store

import (
	"context"
	"errors"

	"github.com/levankhai101280/burger-builder-2026/models"
)

// ErrNotFound is returned when no order matches the given id for the user
var ErrNotFound = errors.New("order not found")

// UnavailableError wraps a store failure the caller may retry. Local state
// must be preserved when it is returned.
type UnavailableError struct {
	Err error
}

func (e *UnavailableError) Error() string {
	return "order store unavailable: " + e.Err.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

// IsUnavailable reports whether err is a retryable store failure
func IsUnavailable(err error) bool {
	var ue *UnavailableError
	return errors.As(err, &ue)
}

// OrderStore defines the operations the order core needs from persistence
type OrderStore interface {
	// InsertOrder persists one order and returns it with the store-assigned
	// id and creation timestamp filled in.
	InsertOrder(ctx context.Context, order models.Order) (models.Order, error)

	// OrdersByUser returns every order belonging to userID, newest first.
	// Records of any historical shape are returned as stored.
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)

	// OrderByID returns a single order owned by userID, or ErrNotFound.
	OrderByID(ctx context.Context, userID, orderID string) (models.Order, error)
}
