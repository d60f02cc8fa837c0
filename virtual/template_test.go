package virtual

import (
	"strings"
	"testing"
	"testing/fstest"
)

const footerTemplate = `{{define "default"}}<html><head>{{template "style"}}</head><body>{{.Content}}{{template "navfooter" .}}</body></html>{{end}}`

func TestSiteTemplates(t *testing.T) {
	vfs, err := New(fstest.MapFS{
		"template/default.html": {Data: []byte(footerTemplate)},
		"404.md":                {Data: []byte("Lost")},
	})
	if err != nil {
		t.Fatal(err)
	}

	b, err := vfs.ReadPage("404.html", "/blog/missing.html")
	if err != nil {
		t.Fatal(err)
	}
	s := string(b)
	for _, want := range []string{
		`<footer class="site-nav"><ul><li><a href="../index.html#about">About</a></li>`,
		`<li><a href="../blog.html">Blog</a></li>`,
		"var(--app-height)",
		"<p>Lost</p>",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in %q", want, s)
		}
	}

	s = readString(t, vfs, "404.html")
	if !strings.Contains(s, `<footer class="site-nav"><ul><li><a href="index.html#about">About</a></li>`) {
		t.Errorf("Expected root footer links in %q", s)
	}
}

func TestSiteTemplateOverride(t *testing.T) {
	vfs, err := New(fstest.MapFS{
		"template/default.html": {Data: []byte(footerTemplate)},
		"template/style.html":   {Data: []byte(`{{define "style"}}<style>main { color: red; }</style>{{end}}`)},
		"page.md":               {Data: []byte("Hi")},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := readString(t, vfs, "page.html")
	if !strings.Contains(s, "main { color: red; }") {
		t.Errorf("Expected the site's own style in %q", s)
	}
	if strings.Contains(s, "--app-height") {
		t.Errorf("Expected the default style to be replaced in %q", s)
	}
}

func TestClassifyHelper(t *testing.T) {
	vfs, err := New(fstest.MapFS{
		"template/default.html": {Data: []byte(`{{define "default"}}<html><body>{{with classify .Page.URLPath}}{{.LinkPrefix}}|{{.IsInsideBlogSubdirectory}}{{end}}</body></html>{{end}}`)},
		"blog/post.md":          {Data: []byte("x")},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := readString(t, vfs, "blog/post.html")
	if !strings.Contains(s, "../|true") {
		t.Errorf("Expected blog page context in %q", s)
	}
}
