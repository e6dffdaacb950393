package gateway

import (
	"context"
	"encoding/json"
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
	"hotelops-dashboard/internal/database"
	"hotelops-dashboard/internal/events"
	"hotelops-dashboard/internal/gateway/handlers"
	"hotelops-dashboard/internal/health"
	"hotelops-dashboard/internal/session"
	"hotelops-dashboard/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryAudit struct {
	mu      sync.Mutex
	entries []database.AuditEntry
}

func (m *memoryAudit) Record(_ context.Context, e database.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memoryAudit) Recent(_ context.Context, username string, limit int) ([]database.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []database.AuditEntry{}
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if username == "" || m.entries[i].Username == username {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func newTestRouter(t *testing.T, backendHandler http.Handler) (*gin.Engine, *memoryAudit, *events.Recorder) {
	t.Helper()
	srv := httptest.NewServer(backendHandler)
	t.Cleanup(srv.Close)

	client := backend.NewClient(srv.URL, 2*time.Second)
	audit := &memoryAudit{}
	rec := &events.Recorder{}
	checker := health.NewChecker()
	checker.Require("backend", client.Ping)

	r := NewRouter(Options{
		Deps: handlers.Deps{
			API:      client,
			Sessions: session.NewMemoryStore(),
			Cache:    cache.New(nil),
			Events:   rec,
		},
		Tokens:        utils.NewTokenManager("router-test", time.Hour),
		AuditRecorder: audit,
		AuditReader:   audit,
		Health:        checker,
	})
	return r, audit, rec
}

func do(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginThenProtectedRoutes(t *testing.T) {
	var sawToken string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"token":"backend-jwt","user":{"email":"desk@hotel.test","role":"reception"}}`)
	})
	mux.HandleFunc("PATCH /api/restaurant/tables/t1/status", func(w http.ResponseWriter, r *http.Request) {
		sawToken = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"success":true,"table":{"_id":"t1","tableNumber":"T1","capacity":4,"status":"dirty"}}`)
	})
	r, audit, rec := newTestRouter(t, mux)

	w := do(t, r, http.MethodGet, "/api/v1/auth/me", "", "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me without token = %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/v1/auth/login", "", `{"email":"desk@hotel.test","password":"pw"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login = %d: %s", w.Code, w.Body.String())
	}
	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &login); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	token := login.Data.Token

	w = do(t, r, http.MethodGet, "/api/v1/auth/me", token, "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "reception") {
		t.Fatalf("me = %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPatch, "/api/v1/tables/t1/status", token, `{"status":"dirty"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("table status = %d: %s", w.Code, w.Body.String())
	}
	if sawToken != "Bearer backend-jwt" {
		t.Fatalf("backend saw %q", sawToken)
	}
	if types := rec.Types(); len(types) != 1 || types[0] != "tables.status_changed" {
		t.Fatalf("events = %v", types)
	}

	w = do(t, r, http.MethodGet, "/api/v1/audit?limit=5", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("audit = %d", w.Code)
	}
	if len(audit.entries) != 1 || audit.entries[0].Resource != "tables" || audit.entries[0].Username != "desk@hotel.test" {
		t.Fatalf("audit entries = %+v", audit.entries)
	}

	w = do(t, r, http.MethodPost, "/api/v1/auth/logout", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/v1/auth/me", token, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("me after logout = %d", w.Code)
	}
}

func TestHealthRoutes(t *testing.T) {
	r, _, _ := newTestRouter(t, http.NotFoundHandler())

	w := do(t, r, http.MethodGet, "/health/detailed", "", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"overall_status":"healthy"`) {
		t.Fatalf("detailed = %d: %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodGet, "/health", "", "")
	if w.Code != http.StatusOK || w.Header().Get("X-Backend-Service") != "available" {
		t.Fatalf("health = %d, header = %q", w.Code, w.Header().Get("X-Backend-Service"))
	}
}
