package health

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestProbeRoutes(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	cases := []struct {
		path string
		body string
	}{
		{"/", "🤖 Telegram Bot is running!"},
		{"/health", "✅ OK"},
		{"/ping", "🏓 Pong!"},
	}

	for _, tc := range cases {
		resp, err := http.Get(ts.URL + tc.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tc.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("GET %s status = %d", tc.path, resp.StatusCode)
		}
		if string(body) != tc.body {
			t.Fatalf("GET %s body = %q, want %q", tc.path, body, tc.body)
		}
	}
}

func TestUnknownPathIs404(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/nope")
	if err != nil {
		t.Fatalf("GET /nope: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestMetricsExposed(t *testing.T) {
	srv := New(0)
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
