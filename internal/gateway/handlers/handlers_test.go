package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/cache"
	"hotelops-dashboard/internal/events"
	"hotelops-dashboard/internal/gateway/middleware"
	"hotelops-dashboard/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBackend serves canned responses for backend routes and remembers the
// last JSON body posted to each route.
type fakeBackend struct {
	mux *http.ServeMux
	srv *httptest.Server

	mu     sync.Mutex
	bodies map[string]map[string]any
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	f := &fakeBackend{mux: http.NewServeMux(), bodies: map[string]map[string]any{}}
	f.srv = httptest.NewServer(f.mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeBackend) reply(pattern string, status int, body string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		f.record(pattern, r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// echo answers with the request body wrapped under key.
func (f *fakeBackend) echo(pattern, key string) {
	f.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		f.store(pattern, raw)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"`+key+`":`+string(raw)+`}`)
	})
}

func (f *fakeBackend) record(pattern string, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	f.store(pattern, raw)
}

func (f *fakeBackend) store(pattern string, raw []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var body map[string]any
	if len(raw) > 0 && json.Unmarshal(raw, &body) == nil {
		f.bodies[pattern] = body
	} else {
		f.bodies[pattern] = map[string]any{}
	}
}

func (f *fakeBackend) body(pattern string) (map[string]any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.bodies[pattern]
	return b, ok
}

type testEnv struct {
	backend  *fakeBackend
	deps     Deps
	sessions *session.MemoryStore
	events   *events.Recorder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fb := newFakeBackend(t)
	sessions := session.NewMemoryStore()
	rec := &events.Recorder{}
	return &testEnv{
		backend:  fb,
		sessions: sessions,
		events:   rec,
		deps: Deps{
			API:      backend.NewClient(fb.srv.URL, 2*time.Second),
			Sessions: sessions,
			Cache:    cache.New(nil),
			Events:   rec,
		},
	}
}

// router mounts handlers behind a stand-in for JWTAuth that marks the
// request as belonging to session "sid-1".
func (e *testEnv) router() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.SessionIDKey, "sid-1")
		c.Set(middleware.UsernameKey, "manager@hotel.test")
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), "backend-token"))
		c.Next()
	})
	return r
}

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Meta    json.RawMessage   `json:"meta"`
	Errors  map[string]string `json:"errors"`
}

func perform(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, w.Body.String(), err)
	}
	return w, env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func TestBackendUnauthorizedEndsSession(t *testing.T) {
	env := newTestEnv(t)
	env.backend.reply("GET /api/restaurant-orders/all", http.StatusUnauthorized, `{"message":"jwt expired"}`)
	if err := env.sessions.Save(context.Background(), "sid-1", "backend-token", time.Hour); err != nil {
		t.Fatalf("save session: %v", err)
	}

	r := env.router()
	h := NewOrderHTTPHandler(env.deps)
	r.GET("/orders", h.ListOrders)

	w, body := perform(t, r, http.MethodGet, "/orders", "")
	if w.Code != http.StatusUnauthorized || body.Success {
		t.Fatalf("status = %d, body = %+v", w.Code, body)
	}
	if _, err := env.sessions.Get(context.Background(), "sid-1"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("session still present: %v", err)
	}
}

func TestBackendErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
		wantMsg    string
	}{
		{"not found", http.StatusNotFound, `{"message":"Order not found"}`, http.StatusNotFound, "Order not found"},
		{"rejected", http.StatusBadRequest, `{"success":false,"message":"Invalid id"}`, http.StatusBadRequest, "Invalid id"},
		{"envelope failure", http.StatusOK, `{"success":false,"message":"Order locked"}`, http.StatusBadRequest, "Order locked"},
		{"server error", http.StatusInternalServerError, `oops`, http.StatusBadGateway, "Failed to get order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.backend.reply("GET /api/restaurant-orders/o1", tt.status, tt.body)

			r := env.router()
			r.GET("/orders/:id", NewOrderHTTPHandler(env.deps).GetOrder)

			w, body := perform(t, r, http.MethodGet, "/orders/o1", "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if body.Message != tt.wantMsg {
				t.Fatalf("message = %q, want %q", body.Message, tt.wantMsg)
			}
		})
	}
}
