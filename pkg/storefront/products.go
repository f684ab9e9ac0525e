package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"sync"

	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
)

// TokenSource supplies the bearer token attached to mutating catalog calls.
// A nil source or an empty token means the call goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// ProductManager owns the authoritative in-memory product list and mediates
// every read and write against the remote store. The cache is never the
// source of truth: it is a read-through/write-through reflection of the
// store, replaced wholesale after a bulk load.
//
// The mutex guards state only; it is never held across a network call.
// Overlapping LoadAll invocations are deliberately not serialized: the last
// one to complete wins, which is acceptable for the mount-time and
// post-mutation reloads that drive this manager.
type ProductManager struct {
	client *Client
	tokens TokenSource

	mu       sync.Mutex
	products []Product
	loading  bool
	lastErr  string
}

// NewProductManager creates a product cache manager. One instance per
// process is the intended lifetime; construct it explicitly and pass it
// down rather than reaching for a package global.
func NewProductManager(client *Client, tokens TokenSource) *ProductManager {
	return &ProductManager{client: client, tokens: tokens}
}

func (m *ProductManager) token() string {
	if m.tokens == nil {
		return ""
	}
	return m.tokens.Token()
}

// Products returns a copy of the cached catalog snapshot.
func (m *ProductManager) Products() []Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Product, len(m.products))
	copy(out, m.products)
	return out
}

// Loading reports whether a bulk load is in flight.
func (m *ProductManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// LastError returns the message of the most recent swallowed load failure,
// or "" when the last load succeeded.
func (m *ProductManager) LastError() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

// LoadAll fetches the full catalog, normalizes every record's identifier
// and replaces the cache atomically. There is no partial merge.
//
// This path is lenient by design: it runs on every page mount and must
// never block rendering, so any failure degrades to an empty catalog with
// LastError set instead of propagating. Returns the resulting snapshot.
func (m *ProductManager) LoadAll(ctx context.Context) []Product {
	m.mu.Lock()
	m.loading = true
	m.lastErr = ""
	m.mu.Unlock()

	env, err := m.client.requestEnvelope(ctx, "/products", nil)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false

	if err != nil {
		logger.Warn("Catalog load failed, degrading to empty catalog", map[string]interface{}{
			"error": err.Error(),
		})
		m.products = nil
		m.lastErr = err.Error()
		return nil
	}

	var fetched []Product
	if err := json.Unmarshal(env.Data, &fetched); err != nil {
		logger.Warn("Catalog payload malformed, degrading to empty catalog", map[string]interface{}{
			"error": err.Error(),
		})
		m.products = nil
		m.lastErr = err.Error()
		return nil
	}

	for i := range fetched {
		fetched[i] = NormalizeIdentity(fetched[i])
	}
	m.products = fetched

	logger.Info("Catalog loaded", map[string]interface{}{
		"count": len(fetched),
	})

	out := make([]Product, len(fetched))
	copy(out, fetched)
	return out
}

// GetByID fetches one product directly from the remote store. It bypasses
// the local cache so deep links never see stale data. Errors propagate.
func (m *ProductManager) GetByID(ctx context.Context, id string) (Product, error) {
	env, err := m.client.requestEnvelope(ctx, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return Product{}, err
	}

	var product Product
	if err := json.Unmarshal(env.Data, &product); err != nil {
		return Product{}, &ProtocolError{Body: string(env.Data)}
	}
	return NormalizeIdentity(product), nil
}

// GetByCategory filters the cached snapshot. No network call; an empty
// cache yields an empty result.
func (m *ProductManager) GetByCategory(category Category) []Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Product
	for _, p := range m.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Add creates a product in the remote store, then resynchronizes with a
// full LoadAll. The store is the sole source of truth, so the cost of a
// full refetch is accepted over an incremental merge that could diverge.
// Returns the normalized created record; any failure leaves the cache
// unchanged and propagates.
func (m *ProductManager) Add(ctx context.Context, draft ProductDraft) (Product, error) {
	if err := draft.Validate(); err != nil {
		return Product{}, err
	}

	env, err := m.client.requestEnvelope(ctx, "/products", &RequestOptions{
		Method:  http.MethodPost,
		Body:    draft,
		Headers: bearerHeaders(m.token()),
	})
	if err != nil {
		return Product{}, err
	}

	var created Product
	if err := json.Unmarshal(env.Data, &created); err != nil {
		return Product{}, &ProtocolError{Body: string(env.Data)}
	}
	created = NormalizeIdentity(created)

	logger.Info("Product created, reloading catalog", map[string]interface{}{
		"product_id": created.ID,
		"name":       created.Name,
	})
	m.LoadAll(ctx)

	return created, nil
}

// Update issues an authenticated update and, on success, replaces the one
// matching cached entry in place. A single-record replacement is
// unambiguous, so no full reload happens here. On failure the cache is
// unchanged and the error propagates.
func (m *ProductManager) Update(ctx context.Context, id string, draft ProductDraft) (Product, error) {
	env, err := m.client.requestEnvelope(ctx, "/products/"+url.PathEscape(id), &RequestOptions{
		Method:  http.MethodPut,
		Body:    draft,
		Headers: bearerHeaders(m.token()),
	})
	if err != nil {
		return Product{}, err
	}

	var updated Product
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		return Product{}, &ProtocolError{Body: string(env.Data)}
	}
	updated = NormalizeIdentity(updated)

	m.mu.Lock()
	for i := range m.products {
		if matchesID(m.products[i], id) {
			m.products[i] = updated
			break
		}
	}
	m.mu.Unlock()

	return updated, nil
}

// Delete removes a product from the remote store and, on success, from the
// cache. On failure the cache is unchanged and the error propagates.
func (m *ProductManager) Delete(ctx context.Context, id string) error {
	_, err := m.client.requestEnvelope(ctx, "/products/"+url.PathEscape(id), &RequestOptions{
		Method:  http.MethodDelete,
		Headers: bearerHeaders(m.token()),
	})
	if err != nil {
		return err
	}

	m.mu.Lock()
	kept := m.products[:0]
	for _, p := range m.products {
		if !matchesID(p, id) {
			kept = append(kept, p)
		}
	}
	m.products = kept
	m.mu.Unlock()

	return nil
}

// Search runs the catalog query matcher over the cached snapshot.
func (m *ProductManager) Search(query string) []Product {
	return SearchProducts(query, m.Products())
}
