package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

// catalogServer is a minimal in-memory stand-in for the product API.
type catalogServer struct {
	products []Product
	failList bool
	requests atomic.Int64
}

func (s *catalogServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.URL.Path == "/api/products" && r.Method == http.MethodGet:
			if s.failList {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"success":false,"message":"Error fetching products"}`))
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true, "count": len(s.products), "data": s.products,
			})

		case r.URL.Path == "/api/products" && r.Method == http.MethodPost:
			if r.Header.Get("Authorization") == "" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"success":false,"message":"Authentication required"}`))
				return
			}
			var draft ProductDraft
			json.NewDecoder(r.Body).Decode(&draft)
			created := Product{
				DocID:       "created-1",
				Name:        draft.Name,
				Price:       draft.Price,
				Image:       draft.Image,
				Category:    draft.Category,
				Description: draft.Description,
			}
			s.products = append(s.products, created)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": created})

		case strings.HasPrefix(r.URL.Path, "/api/products/") && r.Method == http.MethodGet:
			id := strings.TrimPrefix(r.URL.Path, "/api/products/")
			for _, p := range s.products {
				if p.DocID == id {
					json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": p})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Product not found"}`))

		case strings.HasPrefix(r.URL.Path, "/api/products/") && r.Method == http.MethodPut:
			id := strings.TrimPrefix(r.URL.Path, "/api/products/")
			var draft ProductDraft
			json.NewDecoder(r.Body).Decode(&draft)
			for i, p := range s.products {
				if p.DocID == id {
					p.Name = draft.Name
					p.Price = draft.Price
					s.products[i] = p
					json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": p})
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Product not found"}`))

		case strings.HasPrefix(r.URL.Path, "/api/products/") && r.Method == http.MethodDelete:
			id := strings.TrimPrefix(r.URL.Path, "/api/products/")
			for i, p := range s.products {
				if p.DocID == id {
					s.products = append(s.products[:i], s.products[i+1:]...)
					w.Write([]byte(`{"success":true,"message":"Product deleted successfully"}`))
					return
				}
			}
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Product not found"}`))

		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"success":false,"message":"Not found"}`))
		}
	}
}

func setupProductManager(t *testing.T, srv *catalogServer, tokens TokenSource) *ProductManager {
	t.Helper()
	server := httptest.NewServer(srv.handler())
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/api"})
	require.NoError(t, err)
	return NewProductManager(client, tokens)
}

func TestProductManager_LoadAll(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Name: "Midnight Serenity", Price: "$26,800", Category: CategoryCollection},
		{DocID: "p2", Name: "Titan Apex Pro", Price: "$29,900", Category: CategorySpotlight},
	}}
	manager := setupProductManager(t, srv, nil)

	products := manager.LoadAll(context.Background())
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID, "identifier must be normalized")
	assert.Equal(t, "p2", products[1].ID)
	assert.Empty(t, manager.LastError())
	assert.False(t, manager.Loading())
}

func TestProductManager_LoadAll_DegradesOnServerError(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Name: "Midnight Serenity"},
	}}
	manager := setupProductManager(t, srv, nil)

	require.Len(t, manager.LoadAll(context.Background()), 1)

	// The next load hits a 500: the catalog degrades to empty, the error
	// is recorded, nothing escapes the call.
	srv.failList = true
	products := manager.LoadAll(context.Background())
	assert.Len(t, products, 0)
	assert.Len(t, manager.Products(), 0)
	assert.NotEmpty(t, manager.LastError())

	// A successful reload recovers and clears the recorded error.
	srv.failList = false
	require.Len(t, manager.LoadAll(context.Background()), 1)
	assert.Empty(t, manager.LastError())
}

func TestProductManager_GetByID(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Name: "Midnight Serenity"},
	}}
	manager := setupProductManager(t, srv, nil)

	product, err := manager.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	// Unlike LoadAll, lookup failures propagate.
	_, err = manager.GetByID(context.Background(), "missing")
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
}

func TestProductManager_GetByCategory(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Category: CategoryCollection},
		{DocID: "p2", Category: CategorySpotlight},
		{DocID: "p3", Category: CategoryCollection},
	}}
	manager := setupProductManager(t, srv, nil)

	// Empty cache filters to nothing without a network call.
	before := srv.requests.Load()
	assert.Empty(t, manager.GetByCategory(CategoryCollection))
	assert.Equal(t, before, srv.requests.Load())

	manager.LoadAll(context.Background())
	collection := manager.GetByCategory(CategoryCollection)
	require.Len(t, collection, 2)
	assert.Equal(t, "p1", collection[0].ID)
	assert.Equal(t, "p3", collection[1].ID)
	assert.Empty(t, manager.GetByCategory("Archive"))
}

func TestProductManager_Add(t *testing.T) {
	srv := &catalogServer{}
	manager := setupProductManager(t, srv, staticToken("admin-token"))

	draft := ProductDraft{
		Name:        "Nova Classic",
		Price:       "$18,500",
		Image:       "https://example.com/col1.jpg",
		Category:    CategoryCollection,
		Description: "Minimal everyday luxury watch",
	}
	created, err := manager.Add(context.Background(), draft)
	require.NoError(t, err)
	assert.Equal(t, "created-1", created.ID)

	// The create triggered a full catalog reload.
	assert.Len(t, manager.Products(), 1)
}

func TestProductManager_Add_ValidationBeforeNetwork(t *testing.T) {
	srv := &catalogServer{}
	manager := setupProductManager(t, srv, staticToken("admin-token"))

	_, err := manager.Add(context.Background(), ProductDraft{Name: "incomplete"})
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Zero(t, srv.requests.Load(), "validation failure must not reach the network")
	assert.Empty(t, manager.Products())
}

func TestProductManager_Add_Unauthenticated(t *testing.T) {
	srv := &catalogServer{}
	manager := setupProductManager(t, srv, nil)

	_, err := manager.Add(context.Background(), ProductDraft{
		Name:        "Nova Classic",
		Price:       "$18,500",
		Image:       "https://example.com/col1.jpg",
		Category:    CategoryCollection,
		Description: "Minimal everyday luxury watch",
	})
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	assert.Empty(t, manager.Products(), "failed create leaves the cache unchanged")
}

func TestProductManager_Update_ReplacesOnlyMatchingEntry(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Name: "Midnight Serenity", Price: "$26,800", Image: "img-1"},
		{DocID: "p2", Name: "Eternal Shadow", Price: "$30,200", Image: "img-2"},
	}}
	manager := setupProductManager(t, srv, staticToken("admin-token"))
	manager.LoadAll(context.Background())

	listCalls := srv.requests.Load()
	updated, err := manager.Update(context.Background(), "p1", ProductDraft{
		Name: "Midnight Serenity II", Price: "$27,000",
	})
	require.NoError(t, err)
	assert.Equal(t, "Midnight Serenity II", updated.Name)

	products := manager.Products()
	require.Len(t, products, 2)
	assert.Equal(t, "Midnight Serenity II", products[0].Name)
	// Untouched entry is carried over as-is, including its fields.
	assert.Equal(t, "Eternal Shadow", products[1].Name)
	assert.Equal(t, "img-2", products[1].Image)

	// Update splices in place: exactly one extra request, no bulk reload.
	assert.Equal(t, listCalls+1, srv.requests.Load())
}

func TestProductManager_Update_FailureLeavesCacheUnchanged(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Name: "Midnight Serenity"},
	}}
	manager := setupProductManager(t, srv, staticToken("admin-token"))
	manager.LoadAll(context.Background())

	_, err := manager.Update(context.Background(), "missing", ProductDraft{Name: "x"})
	require.Error(t, err)

	products := manager.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Midnight Serenity", products[0].Name)
}

func TestProductManager_Delete(t *testing.T) {
	srv := &catalogServer{products: []Product{
		{DocID: "p1", Name: "Midnight Serenity"},
		{DocID: "p2", Name: "Eternal Shadow"},
	}}
	manager := setupProductManager(t, srv, staticToken("admin-token"))
	manager.LoadAll(context.Background())

	require.NoError(t, manager.Delete(context.Background(), "p1"))
	products := manager.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "p2", products[0].ID)

	// Deleting a missing product propagates and changes nothing.
	err := manager.Delete(context.Background(), "p1")
	require.Error(t, err)
	assert.Len(t, manager.Products(), 1)
}
