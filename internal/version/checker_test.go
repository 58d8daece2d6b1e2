package version

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name     string
		latest   string
		current  string
		expected bool
	}{
		{"same version", "0.1.0", "0.1.0", false},
		{"patch upgrade", "0.1.1", "0.1.0", true},
		{"patch downgrade", "0.0.9", "0.1.0", false},
		{"minor upgrade", "0.2.0", "0.1.9", true},
		{"major upgrade", "1.0.0", "0.9.9", true},
		{"multi-digit patch", "0.0.100", "0.0.99", true},
		{"short form", "1.0", "0.0.28", true},
		{"leading v", "v0.2.0", "0.1.0", true},
		{"pre-release below release", "0.2.0-rc.1", "0.2.0", false},
		{"pre-release above older release", "0.2.0-rc.1", "0.1.0", true},
		{"build metadata ignored", "0.1.0+build5", "0.1.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsNewer(tt.latest, tt.current)
			if err != nil {
				t.Fatalf("IsNewer(%q, %q) error: %v", tt.latest, tt.current, err)
			}
			if got != tt.expected {
				t.Errorf("IsNewer(%q, %q) = %v, want %v", tt.latest, tt.current, got, tt.expected)
			}
		})
	}
}

func TestIsNewer_Invalid(t *testing.T) {
	if _, err := IsNewer("latest", "0.1.0"); err == nil {
		t.Error("expected error for non-semver release")
	}
	if _, err := IsNewer("0.1.0", "dev"); err == nil {
		t.Error("expected error for non-semver current")
	}
}

func TestChecker_Check(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"tag_name":"v0.3.0","name":"0.3.0","html_url":"https://example.com/r/0.3.0"}`))
	}))
	defer srv.Close()

	c := &Checker{URL: srv.URL, Client: srv.Client()}
	update, err := c.Check(context.Background(), "0.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	if !update.Available || update.Latest != "0.3.0" || update.URL != "https://example.com/r/0.3.0" {
		t.Errorf("update = %+v", update)
	}
	if userAgent != "folio/0.1.0" {
		t.Errorf("User-Agent = %q", userAgent)
	}
}

func TestChecker_UpToDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v0.1.0"}`))
	}))
	defer srv.Close()

	c := &Checker{URL: srv.URL, Client: srv.Client()}
	update, err := c.Check(context.Background(), "0.1.0")
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if update.Available {
		t.Error("same version should not be an update")
	}
}

func TestChecker_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"bad status", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusForbidden) }},
		{"bad body", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte("not json")) }},
		{"bad tag", func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"tag_name":"nightly"}`)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := &Checker{URL: srv.URL, Client: srv.Client()}
			if _, err := c.Check(context.Background(), "0.1.0"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestChecker_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"tag_name":"v0.3.0"}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Checker{URL: srv.URL, Client: srv.Client()}
	if _, err := c.Check(ctx, "0.1.0"); err == nil {
		t.Error("expected error for cancelled context")
	}
}
