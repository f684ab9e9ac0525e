package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
)

const defaultTimeout = 30 * time.Second

// Config holds the Remote Access Client configuration.
type Config struct {
	// BaseURL is the API root, e.g. "http://localhost:5000/api".
	BaseURL string
	// Timeout bounds each request. Zero means the 30s default.
	Timeout time.Duration
	// HTTPClient overrides the underlying transport, mainly for tests.
	HTTPClient *http.Client
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required")
	}
	return nil
}

// Client is the single chokepoint for every HTTP exchange with the backing
// store. It serializes bodies, merges headers and unwraps error responses;
// it holds no state of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Remote Access Client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}, nil
}

// RequestOptions configures a single exchange. The zero value is a GET with
// no body and no extra headers.
type RequestOptions struct {
	// Method defaults to GET.
	Method string
	// Body may be a struct or map (serialized to JSON with the content type
	// set automatically), url.Values (form-encoded), or []byte (sent raw).
	Body interface{}
	// Headers are merged over the computed ones; the caller wins on conflict.
	Headers map[string]string
}

// envelope is the response shape shared by every endpoint of the store:
// {success, message?, count?, data?}.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// Request performs one HTTP exchange against path (relative to the base URL)
// and returns the raw JSON response body on success.
//
// Failures map onto the client error taxonomy: *NetworkError when the
// transport fails, *ProtocolError when the response is not valid JSON, and
// *RemoteError when the status is outside the 2xx range. Callers should not
// assume more shape than "has a human-readable message".
func (c *Client) Request(ctx context.Context, path string, opts *RequestOptions) (json.RawMessage, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	body, contentType, err := encodeBody(opts.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	fullURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	// Caller-supplied headers win on conflict.
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	logger.Debug("Storefront API request", map[string]interface{}{
		"method": method,
		"url":    fullURL,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	// A non-JSON body is a protocol failure regardless of status: the
	// response text is preserved for diagnostics.
	if !json.Valid(raw) {
		return nil, &ProtocolError{Body: strings.TrimSpace(string(raw))}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		message := ""
		if err := json.Unmarshal(raw, &env); err == nil {
			message = env.Message
		}
		if message == "" {
			message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return nil, &RemoteError{StatusCode: resp.StatusCode, Message: message}
	}

	return raw, nil
}

// encodeBody prepares the request body and the automatic content type.
// Structured values become JSON; form payloads and raw bytes pass through.
func encodeBody(body interface{}) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return bytes.NewReader(b), "", nil
	case url.Values:
		return strings.NewReader(b.Encode()), "application/x-www-form-urlencoded", nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// requestEnvelope performs a request and unmarshals the standard response
// envelope shared by the product, review and auth endpoints.
func (c *Client) requestEnvelope(ctx context.Context, path string, opts *RequestOptions) (*envelope, error) {
	raw, err := c.Request(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, &ProtocolError{Body: strings.TrimSpace(string(raw))}
	}
	return &env, nil
}

// bearerHeaders builds the Authorization header for mutating calls. An
// empty token yields no header: the request goes out anonymous and the
// server decides.
func bearerHeaders(token string) map[string]string {
	if token == "" {
		return nil
	}
	return map[string]string{"Authorization": "Bearer " + token}
}
