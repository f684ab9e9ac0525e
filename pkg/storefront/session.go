package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/mohammadsaqib2064/onyx-aura/pkg/logger"
)

// Session holds the opaque bearer token and user record issued at login.
// The token's contents are never interpreted here beyond presence: it is
// treated as valid until the server answers 401, which surfaces to the
// caller as a RemoteError (no automatic retry or refresh).
//
// Session implements TokenSource for the ProductManager.
type Session struct {
	client *Client
	store  Storage

	mu    sync.Mutex
	token string
	user  *User
}

// persistedAuth is the shape written to durable storage, shared with
// earlier sessions under sessionStorageKey.
type persistedAuth struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// NewSession creates a session and rehydrates any persisted login. An
// unreadable persisted value is deleted and the session starts signed out.
func NewSession(client *Client, store Storage) *Session {
	s := &Session{client: client, store: store}

	if data, ok := store.Load(sessionStorageKey); ok {
		var saved persistedAuth
		if err := json.Unmarshal(data, &saved); err != nil {
			logger.Warn("Discarding unreadable persisted session", map[string]interface{}{
				"error": err.Error(),
			})
			store.Delete(sessionStorageKey)
		} else {
			s.token = saved.Token
			s.user = saved.User
		}
	}
	return s
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login exchanges credentials for a bearer token and persists both token
// and user record. Errors from the Remote Access Client propagate.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	env, err := s.client.requestEnvelope(ctx, "/auth/login", &RequestOptions{
		Method: http.MethodPost,
		Body:   loginPayload{Email: email, Password: password},
	})
	if err != nil {
		return nil, err
	}

	var result loginResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		return nil, &ProtocolError{Body: string(env.Data)}
	}

	s.mu.Lock()
	s.token = result.Token
	s.user = result.User
	s.mu.Unlock()

	data, err := json.Marshal(persistedAuth{Token: result.Token, User: result.User})
	if err == nil {
		if err := s.store.Save(sessionStorageKey, data); err != nil {
			logger.Warn("Failed to persist session", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Signed in", map[string]interface{}{
		"email": email,
	})
	return result.User, nil
}

// Logout drops the token and user record and removes the persisted login.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	s.store.Delete(sessionStorageKey)
}

// Token returns the current bearer token, or "" when signed out.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// User returns the signed-in user record, or nil.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// IsDemo reports whether the signed-in user carries the demo role. Demo
// users must be blocked from mutating calls at the surface that initiates
// them; the managers themselves do not enforce this.
func (s *Session) IsDemo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == "demo"
}
