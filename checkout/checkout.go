// Package checkout validates and submits a cart as a persisted order.
package checkout

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/levankhai101280/burger-builder-2026/models"
	"github.com/levankhai101280/burger-builder-2026/store"
)

// minPhoneDigits is the minimum number of digits a delivery phone number
// must contain after separators are stripped.
const minPhoneDigits = 9

// ErrAuthRequired is returned when a submission carries no authenticated identity
var ErrAuthRequired = errors.New("authentication required")

// ValidationError reports input the customer can fix before resubmitting.
// Store access is never attempted once one is raised.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

// IsValidation reports whether err is a fix-your-input failure
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Two distinct not-ready-to-checkout states: an empty cart, and a burger
// still being built that was never added to the cart. The UI shows
// different guidance for each.
var (
	ErrCartEmpty             = &ValidationError{Field: "cart", Reason: "cart is empty"}
	ErrCompositionInProgress = &ValidationError{Field: "cart", Reason: "add the burger you are building to the cart before checking out"}
)

// Identity is the authenticated customer a checkout runs on behalf of
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
}

// Submitter turns a cart plus contact details into a persisted order record
type Submitter struct {
	store      store.OrderStore
	dialPrefix string
}

// NewSubmitter creates a Submitter writing to st. dialPrefix is prepended
// to normalized phone numbers; it defaults to "+".
func NewSubmitter(st store.OrderStore, dialPrefix string) *Submitter {
	if dialPrefix == "" {
		dialPrefix = "+"
	}
	return &Submitter{store: st, dialPrefix: dialPrefix}
}

// Prepare validates the contact details and normalizes the cart into the
// order record to be written. It never touches the store and never mutates
// the cart or the composition, so a failed preparation costs the customer
// nothing. The contact email is always replaced with the identity's email.
func (s *Submitter) Prepare(identity Identity, cart *models.Cart, comp *models.Composition, contact models.Contact) (models.Order, error) {
	if identity.UserID == "" {
		return models.Order{}, ErrAuthRequired
	}

	if cart == nil || cart.ItemCount() == 0 {
		if comp != nil && !comp.Empty() {
			return models.Order{}, ErrCompositionInProgress
		}
		return models.Order{}, ErrCartEmpty
	}

	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return models.Order{}, &ValidationError{Field: "name", Reason: "name is required"}
	}
	contact.Address = strings.TrimSpace(contact.Address)
	if contact.Address == "" {
		return models.Order{}, &ValidationError{Field: "address", Reason: "address is required"}
	}

	phone, err := s.normalizePhone(contact.Phone)
	if err != nil {
		return models.Order{}, err
	}
	contact.Phone = phone
	contact.Email = identity.Email

	items := make([]models.OrderItem, 0, cart.ItemCount())
	for _, ci := range cart.Items() {
		items = append(items, models.OrderItem{
			Price:       ci.Price,
			Ingredients: ci.IngredientCounts(),
			Layers:      ci.Layers,
		})
	}
	// Totals come from the cart's own aggregates, never recomputed from
	// the request payload.
	totalPrice := cart.TotalPrice()
	totalItems := cart.ItemCount()

	return models.Order{
		UserID: identity.UserID,
		OrderData: &models.OrderData{
			CartItems:  items,
			TotalPrice: &totalPrice,
			TotalItems: &totalItems,
		},
		Contact: contact,
		Status:  models.OrderStatusPending,
	}, nil
}

// Submit writes a prepared order as a single record insert. The store
// assigns the id and creation timestamp. A failure is reported as a
// retryable store error, distinguishable from validation failures.
func (s *Submitter) Submit(ctx context.Context, order models.Order) (models.Order, error) {
	return s.store.InsertOrder(ctx, order)
}

// SubmitCart runs the full checkout: validate, persist, then clear the cart
// and reset the composition. The local state is only touched after the
// store acknowledges the write, so any failure leaves the customer free to
// retry without re-entering anything.
func (s *Submitter) SubmitCart(ctx context.Context, identity Identity, cart *models.Cart, comp *models.Composition, contact models.Contact) (models.Order, error) {
	order, err := s.Prepare(identity, cart, comp, contact)
	if err != nil {
		return models.Order{}, err
	}
	saved, err := s.Submit(ctx, order)
	if err != nil {
		return models.Order{}, err
	}
	cart.Clear()
	if comp != nil {
		comp.Reset()
	}
	return saved, nil
}

// normalizePhone strips separators from raw, validates that only digits
// remain and applies the international dial prefix exactly once.
func (s *Submitter) normalizePhone(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, s.dialPrefix)

	var digits strings.Builder
	for _, r := range trimmed {
		switch {
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
			// separator, dropped
		default:
			return "", &ValidationError{Field: "phone", Reason: "phone may only contain digits"}
		}
	}
	if digits.Len() < minPhoneDigits {
		return "", &ValidationError{Field: "phone", Reason: "phone number is too short"}
	}
	return s.dialPrefix + digits.String(), nil
}
