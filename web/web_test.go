package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/ancientlore/sitenav/virtual"
)

func TestErrorHandler(t *testing.T) {
	fsys := fstest.MapFS{
		"index.html": {Data: []byte("<p>home</p>")},
		"404.html":   {Data: []byte("<p>lost</p>")},
	}
	h := ErrorHandler(http.FileServer(http.FS(fsys)), fsys)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.html", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if rec.Body.String() != "<p>lost</p>" {
		t.Errorf("Expected custom 404 page, got %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Unexpected content type %q", ct)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "home") {
		t.Errorf("Expected home page, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestErrorPageMenuFollowsRequest(t *testing.T) {
	vfs, err := virtual.New(fstest.MapFS{
		"index.html":     {Data: []byte("<html><body><p>home</p></body></html>")},
		"404.html":       {Data: []byte("<html><body><p>lost</p></body></html>")},
		"blog/post.html": {Data: []byte("<html><body><p>post</p></body></html>")},
	})
	if err != nil {
		t.Fatal(err)
	}
	h := ErrorHandler(http.FileServer(http.FS(vfs)), vfs)

	for _, tc := range []struct {
		path    string
		want    []string
		notWant string
	}{
		{"/blog/missing.html", []string{`href="../index.html#about"`, `href="../blog.html"`}, `href="index.html#about"`},
		{"/missing.html", []string{`href="index.html#about"`, `href="blog.html"`}, `href="../`},
		{"/", []string{`href="#about" data-close-menu=""`, "home"}, "lost"},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		body := rec.Body.String()
		if tc.path != "/" && rec.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", tc.path, rec.Code)
		}
		for _, want := range tc.want {
			if !strings.Contains(body, want) {
				t.Errorf("%s: expected %q in %q", tc.path, want, body)
			}
		}
		if strings.Contains(body, tc.notWant) {
			t.Errorf("%s: did not expect %q in %q", tc.path, tc.notWant, body)
		}
	}
}

func TestErrorHandlerWithoutPage(t *testing.T) {
	fsys := fstest.MapFS{}
	h := ErrorHandler(http.FileServer(http.FS(fsys)), fsys)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing.html", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "404 page not found") {
		t.Errorf("Expected default body, got %q", rec.Body.String())
	}
}

func TestExpiresHandler(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := ExpiresHandler(ok, time.Minute, time.Hour)

	for _, tc := range []struct {
		path string
		want time.Duration
	}{
		{"/", time.Minute},
		{"/blog/post1.html", time.Minute},
		{"/style.css", time.Hour},
		{"/_nav/menu.js", time.Hour},
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		exp, err := time.Parse(time.RFC1123, rec.Header().Get("Expires"))
		if err != nil {
			t.Errorf("%s: %s", tc.path, err)
			continue
		}
		d := time.Until(exp)
		if d > tc.want+time.Second || d < tc.want-2*time.Second {
			t.Errorf("%s: expected expiry near %s, got %s", tc.path, tc.want, d)
		}
	}

	rec := httptest.NewRecorder()
	ExpiresHandler(ok, 0, 0).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("Expires") != "" {
		t.Error("Expected no Expires header")
	}
}

func TestHeaderHandler(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rec := httptest.NewRecorder()
	HeaderHandler(ok, map[string]string{"X-Frame-Options": "DENY"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("Expected header to be set")
	}
}

func TestAssetHandler(t *testing.T) {
	mod := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	h := AssetHandler("text/javascript; charset=utf-8", []byte("console.log(1)"), mod)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/_nav/menu.js", nil))
	if rec.Body.String() != "console.log(1)" {
		t.Errorf("Unexpected body %q", rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/javascript; charset=utf-8" {
		t.Errorf("Unexpected content type %q", ct)
	}

	req := httptest.NewRequest(http.MethodGet, "/_nav/menu.js", nil)
	req.Header.Set("If-Modified-Since", mod.Add(time.Hour).Format(http.TimeFormat))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("Expected 304, got %d", rec.Code)
	}
}
