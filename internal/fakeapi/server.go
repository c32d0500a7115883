// Package fakeapi is an in-process stand-in for the hotel admin REST API used by tests.
package fakeapi

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Recorded is one request the server received.
type Recorded struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	ContentType   string
	Body          []byte
}

// Server issues opaque tokens and rejects protected routes without a valid bearer.
type Server struct {
	*httptest.Server
	Router chi.Router

	accessTokens  map[string]bool
	refreshTokens map[string]bool
	requests      []Recorded
	refreshDelay  time.Duration
	refreshStatus int
	lock          sync.RWMutex

	refreshCalls atomic.Int32
}

// New starts a server that is closed when the test ends.
func New(t *testing.T) *Server {
	t.Helper()
	s := &Server{
		accessTokens:  make(map[string]bool),
		refreshTokens: make(map[string]bool),
	}

	r := chi.NewRouter()
	r.Use(s.record)
	r.Post("/auth/refresh", s.handleRefresh)
	s.Router = r
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// IssueTokens creates a valid token pair.
func (s *Server) IssueTokens() (accessToken, refreshToken string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.issueLocked()
}

func (s *Server) issueLocked() (string, string) {
	access, refresh := "at-"+uuid.NewString(), "rt-"+uuid.NewString()
	s.accessTokens[access] = true
	s.refreshTokens[refresh] = true
	return access, refresh
}

// ExpireAccess makes an access token invalid.
func (s *Server) ExpireAccess(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.accessTokens, token)
}

// RevokeRefresh makes a refresh token invalid.
func (s *Server) RevokeRefresh(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.refreshTokens, token)
}

// SetRefreshDelay slows the refresh endpoint down.
func (s *Server) SetRefreshDelay(d time.Duration) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.refreshDelay = d
}

// FailRefresh makes the refresh endpoint answer with status until it is called with 0.
func (s *Server) FailRefresh(status int) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.refreshStatus = status
}

// RefreshCalls is the number of requests the refresh endpoint received.
func (s *Server) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Recorded {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return append([]Recorded(nil), s.requests...)
}

// RequestsTo returns the recorded requests for path.
func (s *Server) RequestsTo(path string) []Recorded {
	var out []Recorded
	for _, r := range s.Requests() {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// Protected registers a handler that requires a valid bearer token.
func (s *Server) Protected(method, pattern string, h http.HandlerFunc) {
	s.Router.With(s.requireAuth).MethodFunc(method, pattern, h)
}

// Public registers a handler with no authentication.
func (s *Server) Public(method, pattern string, h http.HandlerFunc) {
	s.Router.MethodFunc(method, pattern, h)
}

// JSON returns a handler replying with status and v.
func JSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, v)
	}
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeUnauthorized(w http.ResponseWriter) {
	WriteJSON(w, http.StatusUnauthorized, map[string]any{"statusCode": http.StatusUnauthorized, "message": "Unauthorized"})
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		s.lock.Lock()
		s.requests = append(s.requests, Recorded{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		})
		s.lock.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		s.lock.RLock()
		valid := ok && s.accessTokens[token]
		s.lock.RUnlock()
		if !valid {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	s.refreshCalls.Add(1)

	var req struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{"message": "invalid body"})
		return
	}

	s.lock.RLock()
	delay, status := s.refreshDelay, s.refreshStatus
	s.lock.RUnlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if status != 0 {
		WriteJSON(w, status, map[string]any{"statusCode": status, "message": http.StatusText(status)})
		return
	}

	s.lock.Lock()
	if !s.refreshTokens[req.RefreshToken] {
		s.lock.Unlock()
		writeUnauthorized(w)
		return
	}
	// refresh tokens rotate on use
	delete(s.refreshTokens, req.RefreshToken)
	access, refresh := s.issueLocked()
	s.lock.Unlock()

	WriteJSON(w, http.StatusOK, map[string]string{"accessToken": access, "refreshToken": refresh})
}
