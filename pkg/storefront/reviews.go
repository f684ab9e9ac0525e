package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var emailShape = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ReviewDraft is the payload for submitting a review. The server assigns
// the identifier and timestamp.
type ReviewDraft struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewClient is a thin specialization of the Remote Access Client for the
// per-product review sub-resource. Reviews are never cached beyond the
// currently displayed product, so this client holds no state.
type ReviewClient struct {
	client *Client
}

func NewReviewClient(client *Client) *ReviewClient {
	return &ReviewClient{client: client}
}

// ListForProduct fetches the reviews for one product, newest first as
// ordered by the server. Errors are wrapped with a review-specific message.
func (rc *ReviewClient) ListForProduct(ctx context.Context, productID string) ([]Review, error) {
	env, err := rc.client.requestEnvelope(ctx, "/reviews/product/"+url.PathEscape(productID), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	var reviews []Review
	if err := json.Unmarshal(env.Data, &reviews); err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", &ProtocolError{Body: string(env.Data)})
	}
	return reviews, nil
}

// Create validates the draft client-side, trims the text fields,
// lower-cases the email and submits. The endpoint accepts anonymous
// submissions, so no bearer token is attached. Validation failures are
// raised before any network call; remote errors propagate unmodified.
func (rc *ReviewClient) Create(ctx context.Context, draft ReviewDraft) (*Review, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Email = strings.ToLower(strings.TrimSpace(draft.Email))
	draft.Comment = strings.TrimSpace(draft.Comment)

	if draft.ProductID == "" || draft.Name == "" || draft.Email == "" || draft.Rating == 0 || draft.Comment == "" {
		return nil, validationErrorf("please provide all required fields: productId, name, email, rating, comment")
	}
	if draft.Rating < 1 || draft.Rating > 5 {
		return nil, validationErrorf("rating must be between 1 and 5")
	}
	if !emailShape.MatchString(draft.Email) {
		return nil, validationErrorf("please provide a valid email address")
	}

	env, err := rc.client.requestEnvelope(ctx, "/reviews", &RequestOptions{
		Method: http.MethodPost,
		Body:   draft,
	})
	if err != nil {
		return nil, err
	}

	var review Review
	if err := json.Unmarshal(env.Data, &review); err != nil {
		return nil, &ProtocolError{Body: string(env.Data)}
	}
	return &review, nil
}
