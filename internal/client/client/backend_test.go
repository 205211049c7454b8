package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sainaif/animalsys/internal/client/session"
)

// fakeBackend is a REST backend that accepts exactly one access token at a
// time and rotates it on POST /auth/refresh.
type fakeBackend struct {
	srv *httptest.Server

	mu           sync.Mutex
	valid        string
	refreshToken string
	nextAccess   string
	nextRefresh  string
	authHeaders  map[string][]string

	refreshCalls atomic.Int32
	hits         atomic.Int32

	// beforeRefresh runs inside the refresh handler before it answers.
	beforeRefresh func()
	// refreshStatus, when non-zero, makes the refresh endpoint fail.
	refreshStatus int
	// alwaysReject makes every resource endpoint answer 401.
	alwaysReject bool
}

func newFakeBackend(t *testing.T, valid, refresh string) *fakeBackend {
	t.Helper()
	b := &fakeBackend{
		valid:        valid,
		refreshToken: refresh,
		nextAccess:   "new",
		authHeaders:  map[string][]string{},
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/refresh", b.handleRefresh)
		r.Get("/animals", b.handleResource)
		r.Get("/animals/{id}", b.handleResource)
		r.Post("/animals", b.handleEcho)
		r.Get("/donors", b.handleResource)
		r.Get("/volunteers", b.handleResource)
		r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]any{"code": 404, "message": "animal not found"})
		})
	})

	b.srv = httptest.NewServer(r)
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) baseURL() string {
	return b.srv.URL + "/api/v1"
}

func (b *fakeBackend) headersFor(path string) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.authHeaders[path]...)
}

func (b *fakeBackend) handleResource(w http.ResponseWriter, r *http.Request) {
	b.hits.Add(1)
	auth := r.Header.Get("Authorization")

	b.mu.Lock()
	b.authHeaders[r.URL.Path] = append(b.authHeaders[r.URL.Path], auth)
	ok := !b.alwaysReject && b.valid != "" && auth == "Bearer "+b.valid
	b.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"path":       strings.TrimPrefix(r.URL.Path, "/api/v1"),
		"request_id": r.Header.Get("X-Request-ID"),
		"query":      r.URL.RawQuery,
	})
}

func (b *fakeBackend) handleEcho(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	body["content_type"] = r.Header.Get("Content-Type")
	writeJSON(w, http.StatusCreated, body)
}

func (b *fakeBackend) handleRefresh(w http.ResponseWriter, r *http.Request) {
	b.refreshCalls.Add(1)
	if b.beforeRefresh != nil {
		b.beforeRefresh()
	}

	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	if b.refreshStatus != 0 {
		writeJSON(w, b.refreshStatus, map[string]string{"error": "refresh rejected"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if req.RefreshToken != b.refreshToken {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid refresh token"})
		return
	}
	b.valid = b.nextAccess
	resp := map[string]string{"access_token": b.nextAccess}
	if b.nextRefresh != "" {
		b.refreshToken = b.nextRefresh
		resp["refresh_token"] = b.nextRefresh
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type mockNavigator struct {
	mock.Mock
}

func (m *mockNavigator) RedirectToLogin() {
	m.Called()
}

// waitForWaiters blocks until n requests are queued on c's refresher. It is
// called from backend goroutines, so it reports with assert, not require.
func waitForWaiters(t *testing.T, c *Client, n int) {
	assert.Eventually(t, func() bool {
		c.refresher.mu.Lock()
		defer c.refresher.mu.Unlock()
		return len(c.refresher.waiters) >= n
	}, 5*time.Second, time.Millisecond)
}

func requireEmptyStore(t *testing.T, s *session.MemoryStore) {
	t.Helper()
	a, err := s.AccessToken(t.Context())
	require.NoError(t, err)
	r, err := s.RefreshToken(t.Context())
	require.NoError(t, err)
	require.Empty(t, a)
	require.Empty(t, r)
}
