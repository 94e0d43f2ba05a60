package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/learnify/internal/config"
)

func TestNewHandler_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.CORSOrigins = []string{"http://localhost:3000"}

	h := NewHandler(cfg, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	preflights := []struct {
		name    string
		headers string
		allowed bool
	}{
		{name: "authorization header", headers: "authorization", allowed: true},
		{name: "authorization and content type", headers: "authorization,content-type", allowed: true},
		{name: "non-canonical header casing", headers: "Authorization", allowed: false},
	}

	for _, tt := range preflights {
		t.Run("preflight "+tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
			req.Header.Set("Origin", "http://localhost:3000")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			req.Header.Set("Access-Control-Request-Headers", tt.headers)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if !tt.allowed {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
				return
			}
			assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		})
	}

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
