package storefront

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(Config{BaseURL: server.URL + "/api"})
	require.NoError(t, err)
	return client, server
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}

func TestClient_Request_JSONBody(t *testing.T) {
	var gotContentType string
	var gotBody map[string]interface{}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)
		w.Write([]byte(`{"success":true}`))
	})

	_, err := client.Request(context.Background(), "/products", &RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]string{"name": "Nova Classic"},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "Nova Classic", gotBody["name"])
}

func TestClient_Request_CallerHeadersWin(t *testing.T) {
	var gotContentType, gotAuth string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true}`))
	})

	_, err := client.Request(context.Background(), "/products", &RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]string{"name": "x"},
		Headers: map[string]string{
			"Content-Type":  "application/vnd.custom+json",
			"Authorization": "Bearer token-123",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/vnd.custom+json", gotContentType, "caller header must win on conflict")
	assert.Equal(t, "Bearer token-123", gotAuth)
}

func TestClient_Request_RawBodySkipsJSONEncoding(t *testing.T) {
	var gotBody []byte
	var gotContentType string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"success":true}`))
	})

	_, err := client.Request(context.Background(), "/products", &RequestOptions{
		Method: http.MethodPost,
		Body:   []byte{0x01, 0x02, 0x03},
	})
	require.NoError(t, err)

	assert.Equal(t, []byte{0x01, 0x02, 0x03}, gotBody)
	assert.Empty(t, gotContentType)
}

func TestClient_Request_DefaultsToGET(t *testing.T) {
	var gotMethod string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"success":true}`))
	})

	_, err := client.Request(context.Background(), "/products", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
}

func TestClient_Request_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client, err := NewClient(Config{BaseURL: server.URL + "/api"})
	require.NoError(t, err)

	_, err = client.Request(context.Background(), "/products", nil)
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Contains(t, netErr.Error(), "network error")
}

func TestClient_Request_ProtocolError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	})

	_, err := client.Request(context.Background(), "/products", nil)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "<html>gateway timeout</html>", protoErr.Body)
}

func TestClient_Request_ProtocolErrorBeatsStatus(t *testing.T) {
	// A non-JSON body is a protocol failure even on a non-2xx status.
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})

	_, err := client.Request(context.Background(), "/products", nil)
	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, "upstream exploded", protoErr.Body)
}

func TestClient_Request_RemoteError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Product not found"}`))
	})

	_, err := client.Request(context.Background(), "/products/nope", nil)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusNotFound, remoteErr.StatusCode)
	assert.Equal(t, "Product not found", remoteErr.Message)
}

func TestClient_Request_RemoteErrorGenericMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{}`)) // valid JSON, no message field
	})

	_, err := client.Request(context.Background(), "/products", nil)
	var remoteErr *RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusInternalServerError, remoteErr.StatusCode)
	assert.Equal(t, "request failed with status 500", remoteErr.Message)
}

func TestClient_Request_SuccessReturnsRawJSON(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":[{"_id":"p1"}]}`))
	})

	raw, err := client.Request(context.Background(), "/products", nil)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.True(t, env.Success)
}
