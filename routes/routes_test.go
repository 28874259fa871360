package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHealthRoute(r)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Status string          `json:"status"`
		Health json.RawMessage `json:"health"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Fatalf("expected ok status, got %q", resp.Status)
	}

	// The snapshot names each backing service individually.
	var health map[string]json.RawMessage
	if err := json.Unmarshal(resp.Health, &health); err != nil {
		t.Fatalf("failed to decode health snapshot: %v", err)
	}
	for _, key := range []string{"mongo", "quoteCache", "termsCache", "checkedAt"} {
		if _, ok := health[key]; !ok {
			t.Fatalf("health snapshot missing %q: %s", key, resp.Health)
		}
	}
}
