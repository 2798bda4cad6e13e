package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantCode    int
		wantOrigin  string
		wantMethods string
		wantVary    string
	}{
		{
			name:        "configured origin is echoed",
			allowed:     []string{"https://roster.example.com"},
			method:      http.MethodGet,
			origin:      "https://roster.example.com",
			wantCode:    http.StatusOK,
			wantOrigin:  "https://roster.example.com",
			wantMethods: "GET,POST,DELETE,OPTIONS",
			wantVary:    "Origin",
		},
		{
			name:        "wildcard preflight for player removal",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			origin:      "https://roster.example.com",
			wantCode:    http.StatusNoContent,
			wantOrigin:  "*",
			wantMethods: "GET,POST,DELETE,OPTIONS",
		},
		{
			name:     "unconfigured origin gets no headers",
			allowed:  []string{"https://roster.example.com"},
			method:   http.MethodDelete,
			origin:   "https://scout.example.com",
			wantCode: http.StatusOK,
		},
		{
			name:     "blank entries are ignored",
			allowed:  []string{" ", ""},
			method:   http.MethodGet,
			origin:   "https://roster.example.com",
			wantCode: http.StatusOK,
		},
		{
			name:     "no origin header passes through",
			allowed:  []string{"*"},
			method:   http.MethodGet,
			wantCode: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, "/v1/sports/NFL/teams/Team%20Awesome/chart/QB/players/12", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()

			CORS(tc.allowed, okHandler).ServeHTTP(rec, req)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Fatalf("unexpected Access-Control-Allow-Origin: %q", got)
			}
			if got := rec.Header().Get("Access-Control-Allow-Methods"); got != tc.wantMethods {
				t.Fatalf("unexpected Access-Control-Allow-Methods: %q", got)
			}
			if got := rec.Header().Get("Vary"); got != tc.wantVary {
				t.Fatalf("unexpected Vary: %q", got)
			}
		})
	}
}
