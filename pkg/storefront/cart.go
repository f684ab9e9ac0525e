package storefront

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
)

// CartItem is a product snapshot plus a quantity. The display fields are
// captured at add time and never re-fetched; the snapshot is what the
// customer saw when they added the item.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartManager owns the local-only cart: insertion order is display order,
// at most one entry per canonical identifier, quantities always positive.
// Every mutation persists the whole cart synchronously; the persisted cart
// is rehydrated once at construction.
type CartManager struct {
	mu    sync.Mutex
	items []CartItem
	store Storage
}

// NewCartManager creates a cart manager backed by the given storage.
// Corrupt persisted data is discarded silently: the customer starts with an
// empty cart rather than an error.
func NewCartManager(store Storage) *CartManager {
	m := &CartManager{store: store}

	if data, ok := store.Load(cartStorageKey); ok {
		var items []CartItem
		if err := json.Unmarshal(data, &items); err != nil {
			logger.Warn("Discarding unreadable persisted cart", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			m.items = items
		}
	}
	return m
}

// persist writes the full cart to storage. Called with the mutex held.
func (m *CartManager) persist() {
	data, err := json.Marshal(m.items)
	if err != nil {
		logger.Error("Failed to encode cart for persistence", err)
		return
	}
	if err := m.store.Save(cartStorageKey, data); err != nil {
		logger.Warn("Failed to persist cart", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Add merges a product into the cart: an existing entry for the same
// canonical identifier gets its quantity incremented by one, otherwise a
// new entry with quantity 1 is appended. A product with no obtainable
// identifier cannot be tracked, so the call is a silent no-op.
func (m *CartManager) Add(product Product) {
	id := CanonicalID(product)
	if id == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if matchesID(m.items[i].Product, id) {
			m.items[i].Quantity++
			m.persist()
			return
		}
	}

	snapshot := NormalizeIdentity(product)
	m.items = append(m.items, CartItem{Product: snapshot, Quantity: 1})
	m.persist()
}

// Remove deletes the entry matching id. No-op when absent.
func (m *CartManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removeLocked(id)
	m.persist()
}

func (m *CartManager) removeLocked(id string) {
	kept := m.items[:0]
	for _, item := range m.items {
		if !matchesID(item.Product, id) {
			kept = append(kept, item)
		}
	}
	m.items = kept
}

// SetQuantity sets an entry's quantity exactly. A quantity of zero or less
// removes the entry: the cart never stores a non-positive quantity.
func (m *CartManager) SetQuantity(id string, quantity int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		m.removeLocked(id)
		m.persist()
		return
	}

	for i := range m.items {
		if matchesID(m.items[i].Product, id) {
			m.items[i].Quantity = quantity
			break
		}
	}
	m.persist()
}

// Items returns a copy of the cart in display order.
func (m *CartManager) Items() []CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// TotalItems is the sum of all quantities.
func (m *CartManager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, item := range m.items {
		total += item.Quantity
	}
	return total
}

// TotalPrice sums parsed price times quantity over all entries. An entry
// whose price cannot be parsed contributes zero; it is never excluded and
// the total never fails.
func (m *CartManager) TotalPrice() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0.0
	for _, item := range m.items {
		total += ParsePrice(item.Price) * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart. Invoked on order completion.
func (m *CartManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	m.persist()
}

// ParsePrice converts a display price like "$26,800" to its numeric value.
// Every character outside digits and the decimal point is stripped before
// parsing; a string that still fails to parse is worth zero.
func ParsePrice(display string) float64 {
	var b strings.Builder
	for _, r := range display {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	value, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return value
}
