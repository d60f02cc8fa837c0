package nav

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestClassifyIndex(t *testing.T) {
	for _, p := range []string{"", "/", "/index.html", "index.html", "/people/", "/blog/", "/a/b/index.html"} {
		ctx := Classify(p)
		require.True(t, ctx.IsIndexPage, "path %q should be an index page", p)
		require.False(t, ctx.IsBlogListPage, "path %q should not be the blog list", p)
	}
}

func TestClassifyBlogList(t *testing.T) {
	for _, p := range []string{"/blog.html", "blog.html", "/site/blog.html"} {
		ctx := Classify(p)
		require.True(t, ctx.IsBlogListPage, "path %q", p)
		require.False(t, ctx.IsIndexPage, "path %q", p)
		require.False(t, ctx.IsInsideBlogSubdirectory, "path %q", p)
		require.Empty(t, ctx.LinkPrefix, "path %q", p)
	}
}

func TestClassifyBlogSubdirectory(t *testing.T) {
	for _, p := range []string{"/blog/post1.html", "/blog/2024/notes.html", "x/blog/y"} {
		ctx := Classify(p)
		require.True(t, ctx.IsInsideBlogSubdirectory, "path %q", p)
		require.Equal(t, "../", ctx.LinkPrefix, "path %q", p)
	}
	// the blog list page never gets a prefix, even when nested
	ctx := Classify("/blog/blog.html")
	require.True(t, ctx.IsBlogListPage)
	require.False(t, ctx.IsInsideBlogSubdirectory)
	require.Empty(t, ctx.LinkPrefix)
}

func TestClassifyDefault(t *testing.T) {
	for _, p := range []string{"/research.html", "teaching.html", "%%%", "/blogs/x.html", "/blog"} {
		require.Equal(t, PageContext{}, Classify(p), "path %q", p)
	}
}

func TestClassifyPrefixInvariant(t *testing.T) {
	for _, p := range []string{"", "/", "/blog.html", "/blog/a.html", "/misc.html", "/blog/", "/a/blog/b/"} {
		ctx := Classify(p)
		if ctx.IsInsideBlogSubdirectory {
			require.Equal(t, "../", ctx.LinkPrefix, "path %q", p)
		} else {
			require.Equal(t, "", ctx.LinkPrefix, "path %q", p)
		}
		require.False(t, ctx.IsIndexPage && ctx.IsBlogListPage, "path %q", p)
		require.Equal(t, ctx, Classify(p), "classify must be stable for %q", p)
	}
}

func TestBuildLinksOrder(t *testing.T) {
	for _, ctx := range []PageContext{
		{},
		{IsIndexPage: true},
		{IsBlogListPage: true},
		{IsInsideBlogSubdirectory: true, LinkPrefix: "../"},
	} {
		links := BuildLinks(ctx)
		require.Len(t, links, 5)
		var labels []string
		for _, l := range links {
			labels = append(labels, l.Label)
		}
		require.Equal(t, []string{"About", "Blog", "Research", "Teaching", "Misc"}, labels)
		require.False(t, links[1].ClosesMenuOnIndex, "blog never closes the menu")
	}
}

func TestBuildLinksIndexPage(t *testing.T) {
	links := BuildLinks(Classify("/index.html"))
	require.Equal(t, NavLink{Label: "About", Target: "#about", ClosesMenuOnIndex: true}, links[0])
	require.Equal(t, NavLink{Label: "Blog", Target: "blog.html"}, links[1])
	require.Equal(t, "#research", links[2].Target)
	require.Equal(t, "#teaching", links[3].Target)
	require.Equal(t, "#miscellaneous", links[4].Target)
	for _, i := range []int{0, 2, 3, 4} {
		require.True(t, links[i].ClosesMenuOnIndex, "link %s", links[i].Label)
	}
}

func TestBuildLinksBlogList(t *testing.T) {
	links := BuildLinks(Classify("/blog.html"))
	require.Equal(t, NavLink{Label: "About", Target: "index.html#about"}, links[0])
	require.Equal(t, "blog.html", links[1].Target)
	require.Equal(t, "index.html#miscellaneous", links[4].Target)
}

func TestBuildLinksBlogPost(t *testing.T) {
	links := BuildLinks(Classify("/blog/post1.html"))
	require.Equal(t, "../index.html#about", links[0].Target)
	require.Equal(t, "../blog.html", links[1].Target)
	require.Equal(t, "../index.html#research", links[2].Target)
	require.Equal(t, "../index.html#teaching", links[3].Target)
	for _, l := range links {
		require.False(t, l.ClosesMenuOnIndex, "link %s", l.Label)
	}
}

func parse(t *testing.T, s string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func TestRender(t *testing.T) {
	frag, err := Render(BuildLinks(Classify("/")), Options{})
	require.NoError(t, err)

	doc := parse(t, string(frag))
	toggle := doc.Find("button#" + ToggleID)
	require.Equal(t, 1, toggle.Length())
	require.Equal(t, "Toggle menu", toggle.AttrOr("aria-label", ""))
	require.Equal(t, 3, toggle.Find("span").Length())
	require.Equal(t, 0, doc.Find("#"+OverlayID).Length(), "overlay is opt-in")
	require.Equal(t, 0, doc.Find("script").Length())

	anchors := doc.Find("nav#" + PanelID + " ul.sidebar-nav li a")
	require.Equal(t, 5, anchors.Length())
	require.Equal(t, "#about", anchors.Eq(0).AttrOr("href", ""))
	_, ok := anchors.Eq(0).Attr(CloseAttr)
	require.True(t, ok, "about closes the menu on the index page")
	_, ok = anchors.Eq(1).Attr(CloseAttr)
	require.False(t, ok, "blog never closes the menu")
	require.Equal(t, "Misc", anchors.Eq(4).Text())
}

func TestRenderOrder(t *testing.T) {
	frag, err := Render(BuildLinks(Classify("/blog/a.html")), Options{UseOverlay: true, ScriptPath: DefaultScriptPath, UseViewportHeightFix: true})
	require.NoError(t, err)

	s := string(frag)
	ti := strings.Index(s, `id="`+ToggleID+`"`)
	oi := strings.Index(s, `id="`+OverlayID+`"`)
	pi := strings.Index(s, `id="`+PanelID+`"`)
	require.True(t, ti >= 0 && oi > ti && pi > oi, "expected toggle, overlay, panel in order")

	doc := parse(t, s)
	script := doc.Find("script")
	require.Equal(t, DefaultScriptPath, script.AttrOr("src", ""))
	_, ok := script.Attr("data-viewport-fix")
	require.True(t, ok)
	require.Equal(t, 0, doc.Find("a["+CloseAttr+"]").Length())
	require.Equal(t, "../blog.html", doc.Find("a").Eq(1).AttrOr("href", ""))
}

func TestRenderIdempotent(t *testing.T) {
	links := BuildLinks(Classify("/index.html"))
	opts := Options{UseOverlay: true}
	a, err := Render(links, opts)
	require.NoError(t, err)
	b, err := Render(links, opts)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestRenderEscapesLabels(t *testing.T) {
	frag, err := Render([]NavLink{{Label: "<b>x</b>", Target: "a.html?x=1&y=2"}}, Options{})
	require.NoError(t, err)
	require.NotContains(t, string(frag), "<b>")

	doc := parse(t, string(frag))
	require.Equal(t, "<b>x</b>", doc.Find("a").Text())
	require.Equal(t, "a.html?x=1&y=2", doc.Find("a").AttrOr("href", ""))
}

func TestScriptEmbedded(t *testing.T) {
	require.NotEmpty(t, Script)
	require.Contains(t, string(Script), ToggleID)
	require.Contains(t, string(Script), PanelID)
	require.Contains(t, string(Script), CloseAttr)
}
