// Package orders reconciles persisted order records of mixed schema
// generations into one normalized history view. Two shapes exist in
// storage: legacy single-burger documents with ingredients and total price
// at the root, and current documents nesting everything under order_data.
// Only the normalized form ever leaves this package.
package orders

import (
	"context"
	"strings"
	"time"

	"github.com/levankhai101280/burger-builder-2026/models"
	"github.com/levankhai101280/burger-builder-2026/store"
)

// HistoryEntry is the normalized read model for one persisted order,
// whatever shape it was stored in
type HistoryEntry struct {
	ID         string             `json:"id"`
	ItemCount  int                `json:"item_count"`
	TotalPrice float64            `json:"total_price"`
	Items      []models.OrderItem `json:"items"`
	Contact    models.Contact     `json:"contact"`
	Status     string             `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
}

// Normalize translates raw store records into history entries. The store's
// newest-first ordering is preserved; records are translated, never
// reordered or dropped.
func Normalize(records []models.Order) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, normalizeOne(rec))
	}
	return entries
}

// normalizeOne resolves the record's shape once, in precedence order:
// nested items array, then nested scalar totals, then the legacy root
// fields. Missing numerics default to 0 and missing collections to empty
// so that every stored record still shows up in history.
func normalizeOne(rec models.Order) HistoryEntry {
	entry := HistoryEntry{
		ID:        rec.ID.Hex(),
		Contact:   rec.Contact,
		Status:    rec.Status,
		CreatedAt: rec.CreatedAt,
	}
	if entry.Status == "" {
		entry.Status = models.OrderStatusPending
	}

	// The total resolves independently of where the items come from:
	// the stored nested total is authoritative (never recomputed from
	// item prices), the legacy root total is the fallback, then 0.
	od := rec.OrderData
	switch {
	case od != nil && od.TotalPrice != nil:
		entry.TotalPrice = *od.TotalPrice
	case rec.TotalPrice != nil:
		entry.TotalPrice = *rec.TotalPrice
	}

	switch {
	case od != nil && len(od.CartItems) > 0:
		entry.Items = od.CartItems
		entry.ItemCount = len(od.CartItems)
		if od.TotalItems != nil {
			entry.ItemCount = *od.TotalItems
		}

	case od != nil && (od.TotalPrice != nil || od.TotalItems != nil || len(od.Ingredients) > 0):
		entry.ItemCount = 1
		if od.TotalItems != nil {
			entry.ItemCount = *od.TotalItems
		}
		if len(od.Ingredients) > 0 {
			entry.Items = []models.OrderItem{{
				Price:       entry.TotalPrice,
				Ingredients: od.Ingredients,
			}}
		}

	case rec.TotalPrice != nil || len(rec.Ingredients) > 0:
		// Legacy single-burger document: synthesize exactly one item
		// from the root fields.
		entry.ItemCount = 1
		ingredients := rec.Ingredients
		if ingredients == nil {
			ingredients = map[models.IngredientKind]int{}
		}
		entry.Items = []models.OrderItem{{
			Price:       entry.TotalPrice,
			Ingredients: ingredients,
		}}
	}

	if entry.Items == nil {
		entry.Items = []models.OrderItem{}
	}
	return entry
}

// Search filters entries whose id or any item's ingredient kind contains
// query, case-insensitively. A blank query returns the list unchanged.
func Search(entries []HistoryEntry, query string) []HistoryEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return entries
	}
	matched := make([]HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		if matches(entry, q) {
			matched = append(matched, entry)
		}
	}
	return matched
}

func matches(entry HistoryEntry, q string) bool {
	if strings.Contains(strings.ToLower(entry.ID), q) {
		return true
	}
	for _, item := range entry.Items {
		for kind := range item.Ingredients {
			if strings.Contains(strings.ToLower(string(kind)), q) {
				return true
			}
		}
	}
	return false
}

// History loads and normalizes a user's order history from the store
type History struct {
	store store.OrderStore
}

// NewHistory creates a History reading from st
func NewHistory(st store.OrderStore) *History {
	return &History{store: st}
}

// Load returns the user's normalized order history, newest first
func (h *History) Load(ctx context.Context, userID string) ([]HistoryEntry, error) {
	records, err := h.store.OrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Normalize(records), nil
}

// Get returns one normalized order for the detail view. Summary and detail
// share the same normalization, so they can never disagree about an
// order's composition.
func (h *History) Get(ctx context.Context, userID, orderID string) (HistoryEntry, error) {
	record, err := h.store.OrderByID(ctx, userID, orderID)
	if err != nil {
		return HistoryEntry{}, err
	}
	return normalizeOne(record), nil
}
