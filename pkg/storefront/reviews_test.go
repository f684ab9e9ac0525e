package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReviewClient(t *testing.T, handler http.HandlerFunc) (*ReviewClient, *atomic.Int64) {
	t.Helper()
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/api"})
	require.NoError(t, err)
	return NewReviewClient(client), &requests
}

func TestReviewClient_ListForProduct(t *testing.T) {
	newest := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	oldest := newest.Add(-48 * time.Hour)

	rc, _ := setupReviewClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reviews/product/p1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"count":   2,
			"data": []Review{
				{DocID: "r2", ProductID: "p1", Rating: 5, CreatedAt: newest},
				{DocID: "r1", ProductID: "p1", Rating: 3, CreatedAt: oldest},
			},
		})
	})

	reviews, err := rc.ListForProduct(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	// Server order (newest first) is passed through untouched.
	assert.Equal(t, "r2", reviews[0].DocID)
	assert.True(t, reviews[0].CreatedAt.After(reviews[1].CreatedAt))
}

func TestReviewClient_ListForProduct_WrapsErrors(t *testing.T) {
	rc, _ := setupReviewClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Product not found"}`))
	})

	_, err := rc.ListForProduct(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch reviews")

	var remoteErr *RemoteError
	assert.ErrorAs(t, err, &remoteErr, "the underlying error stays inspectable")
}

func TestReviewClient_Create(t *testing.T) {
	var gotBody ReviewDraft
	rc, _ := setupReviewClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": Review{
				DocID:     "r1",
				ProductID: gotBody.ProductID,
				Name:      gotBody.Name,
				Email:     gotBody.Email,
				Rating:    gotBody.Rating,
				Comment:   gotBody.Comment,
				CreatedAt: time.Now(),
			},
		})
	})

	review, err := rc.Create(context.Background(), ReviewDraft{
		ProductID: "p1",
		Name:      "  Ada Lovelace  ",
		Email:     "  Ada@Example.COM ",
		Rating:    5,
		Comment:   " Stunning craftsmanship. ",
	})
	require.NoError(t, err)

	// Text fields are trimmed and the email lower-cased before submission.
	assert.Equal(t, "Ada Lovelace", gotBody.Name)
	assert.Equal(t, "ada@example.com", gotBody.Email)
	assert.Equal(t, "Stunning craftsmanship.", gotBody.Comment)
	assert.Equal(t, "r1", review.DocID)
}

func TestReviewClient_Create_ValidationBeforeNetwork(t *testing.T) {
	tests := []struct {
		name  string
		draft ReviewDraft
	}{
		{
			name:  "Rating above range",
			draft: ReviewDraft{ProductID: "p1", Name: "Ada", Email: "ada@example.com", Rating: 6, Comment: "x"},
		},
		{
			name:  "Rating below range",
			draft: ReviewDraft{ProductID: "p1", Name: "Ada", Email: "ada@example.com", Rating: -1, Comment: "x"},
		},
		{
			name:  "Missing comment",
			draft: ReviewDraft{ProductID: "p1", Name: "Ada", Email: "ada@example.com", Rating: 4},
		},
		{
			name:  "Whitespace-only name",
			draft: ReviewDraft{ProductID: "p1", Name: "   ", Email: "ada@example.com", Rating: 4, Comment: "x"},
		},
		{
			name:  "Email without domain",
			draft: ReviewDraft{ProductID: "p1", Name: "Ada", Email: "ada@nowhere", Rating: 4, Comment: "x"},
		},
		{
			name:  "Missing product id",
			draft: ReviewDraft{Name: "Ada", Email: "ada@example.com", Rating: 4, Comment: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, requests := setupReviewClient(t, func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("no network call expected")
			})

			_, err := rc.Create(context.Background(), tt.draft)
			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Zero(t, requests.Load())
		})
	}
}

func TestReviewClient_Create_RemoteRejection(t *testing.T) {
	rc, _ := setupReviewClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"message":"Validation error"}`))
	})

	_, err := rc.Create(context.Background(), ReviewDraft{
		ProductID: "p1", Name: "Ada", Email: "ada@example.com", Rating: 4, Comment: "x",
	})
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
}
