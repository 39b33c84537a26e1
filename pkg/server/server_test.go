package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ornatree/pkg/cache"
	"github.com/matzehuels/ornatree/pkg/errors"
	"github.com/matzehuels/ornatree/pkg/pipeline"
	"github.com/matzehuels/ornatree/pkg/project"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
	s := New(runner, project.Sample(), logger, Options{})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return resp, string(body)
}

func TestRoutes(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		path        string
		status      int
		contentType string
		contains    string
	}{
		{"/", http.StatusOK, "text/html", "<svg"},
		{"/?selected=kiel-gaarden", http.StatusOK, "text/html", "Tauschregal"},
		{"/?selected=atlantis", http.StatusNotFound, "application/json", "PROJECT_NOT_FOUND"},
		{"/?selected=Bad%20Id", http.StatusBadRequest, "application/json", "INVALID_INPUT"},
		{"/tree.svg", http.StatusOK, "image/svg+xml", `viewBox="0 0 1100 1080"`},
		{"/tree.svg?selected=leipzig-west", http.StatusOK, "image/svg+xml", `class="ornament selected"`},
		{"/tree.json", http.StatusOK, "application/json", `"ornaments"`},
		{"/tree.gif", http.StatusBadRequest, "application/json", "INVALID_FORMAT"},
		{"/api/layout", http.StatusOK, "application/json", `"row_sizes"`},
		{"/api/layout?count=50", http.StatusOK, "application/json", `"count": 50`},
		{"/api/layout?count=-1", http.StatusBadRequest, "application/json", "INVALID_INPUT"},
		{"/api/layout?count=abc", http.StatusBadRequest, "application/json", "INVALID_INPUT"},
		{"/api/projects", http.StatusOK, "application/json", `"berlin-wedding"`},
		{"/api/projects/hamburg-altona", http.StatusOK, "application/json", `"Hamburg - Reparaturcafé"`},
		{"/api/projects/atlantis", http.StatusNotFound, "application/json", "PROJECT_NOT_FOUND"},
		{"/healthz", http.StatusOK, "application/json", `"ok"`},
		{"/nope", http.StatusNotFound, "application/json", "NOT_FOUND"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, body := get(t, ts, tt.path)
			if resp.StatusCode != tt.status {
				t.Errorf("status = %d, want %d (body %.200s)", resp.StatusCode, tt.status, body)
			}
			if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, tt.contentType) {
				t.Errorf("Content-Type = %q, want %q", ct, tt.contentType)
			}
			if !strings.Contains(body, tt.contains) {
				t.Errorf("body lacks %q: %.300s", tt.contains, body)
			}
		})
	}
}

func TestTreeCacheHeaders(t *testing.T) {
	ts := newTestServer(t)

	first, _ := get(t, ts, "/tree.svg?selected=erfurt-nord")
	if got := first.Header.Get("X-Cache"); got != "MISS" {
		t.Errorf("first X-Cache = %q, want MISS", got)
	}
	second, _ := get(t, ts, "/tree.svg?selected=erfurt-nord")
	if got := second.Header.Get("X-Cache"); got != "HIT" {
		t.Errorf("second X-Cache = %q, want HIT", got)
	}
	etag := second.Header.Get("ETag")
	if etag == "" || etag != first.Header.Get("ETag") {
		t.Fatalf("ETag mismatch: %q vs %q", etag, first.Header.Get("ETag"))
	}

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/tree.svg?selected=erfurt-nord", nil)
	req.Header.Set("If-None-Match", etag)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotModified {
		t.Errorf("conditional GET status = %d, want 304", resp.StatusCode)
	}
}

func TestProjectPosition(t *testing.T) {
	ts := newTestServer(t)
	_, body := get(t, ts, "/api/projects/koeln-ehrenfeld")

	var got struct {
		ID    string  `json:"id"`
		Index int     `json:"index"`
		X     float64 `json:"x"`
		Y     float64 `json:"y"`
	}
	if err := json.Unmarshal([]byte(body), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != "koeln-ehrenfeld" || got.Index != 3 {
		t.Errorf("got %+v", got)
	}
	if got.X == 0 || got.Y == 0 {
		t.Errorf("position not filled: %+v", got)
	}
}

func TestHTMLRedirect(t *testing.T) {
	ts := newTestServer(t)
	client := &http.Client{CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }}
	resp, err := client.Get(ts.URL + "/tree.html?selected=kiel-gaarden")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusFound || resp.Header.Get("Location") != "/?selected=kiel-gaarden" {
		t.Errorf("status %d, Location %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestServeShutdown(t *testing.T) {
	logger := log.New(io.Discard)
	s := New(pipeline.NewRunner(nil, nil, logger), project.Sample(), logger, Options{})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Skipf("cannot listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.New(errors.ErrCodeProjectNotFound, "missing"), http.StatusNotFound},
		{errors.New(errors.ErrCodeFileNotFound, "missing"), http.StatusNotFound},
		{errors.New(errors.ErrCodeInvalidFormat, "bad"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeInvalidCatalog, "bad"), http.StatusBadRequest},
		{errors.New(errors.ErrCodeUnsupported, "no rsvg"), http.StatusNotImplemented},
		{errors.New(errors.ErrCodeInternal, "boom"), http.StatusInternalServerError},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
