package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Stop()

	wrapped := rl.Middleware(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/newsletter/subscribe", nil)
		r.RemoteAddr = "192.0.2.1:5000"

		wrapped.ServeHTTP(rec, r)

		require.Equal(t, http.StatusOK, rec.Code, "request %d within the burst", i+1)
	}

	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/newsletter/subscribe", nil)
	r.RemoteAddr = "192.0.2.1:5000"

	wrapped.ServeHTTP(rec, r)

	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"too many requests"}`, rec.Body.String())
}

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	wrapped := rl.Middleware(okHandler())

	send := func(addr string) int {
		rec := httptest.NewRecorder()
		r := httptest.NewRequest("POST", "/api/newsletter/subscribe", nil)
		r.RemoteAddr = addr

		wrapped.ServeHTTP(rec, r)

		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("192.0.2.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:5001"), "port does not matter, IP does")
	assert.Equal(t, http.StatusOK, send("192.0.2.2:5000"), "a different client has its own budget")
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{
			name:       "Peer address",
			remoteAddr: "192.0.2.1:5000",
			want:       "192.0.2.1",
		},
		{
			name:       "Single forwarded hop",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "First of several forwarded hops",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "203.0.113.7, 10.0.0.2, 10.0.0.1",
			want:       "203.0.113.7",
		},
		{
			name:       "Unparseable peer address is returned as is",
			remoteAddr: "not-an-addr",
			want:       "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remoteAddr

			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, clientIP(r))
		})
	}
}
