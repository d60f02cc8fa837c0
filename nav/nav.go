/*
Package nav builds the site navigation menu for a page.

The menu is derived from the page's URL path alone. Classify works out where the
page sits in the site, BuildLinks turns that into the five fixed navigation
links, and Render produces the HTML fragment: a toggle button, an optional
dimming overlay, and the slide-out panel holding the links.

	ctx := nav.Classify("/blog/post1.html")
	links := nav.BuildLinks(ctx)
	frag, err := nav.Render(links, nav.Options{UseOverlay: true})

The fragment is meant to be inserted as the first children of <body>; see
dom.Mount. Behavior of the rendered elements is described by package menu.
*/
package nav

import "strings"

// Stable element identifiers and markers shared by the rendered markup,
// the menu state machine, and the client script.
const (
	ToggleID    = "menuToggle"      // id of the toggle button
	PanelID     = "sidebar"         // id of the slide-out panel
	OverlayID   = "sidebarOverlay"  // id of the optional dimming overlay
	ActiveClass = "active"          // class present on the panel while open
	CloseAttr   = "data-close-menu" // anchors carrying this close the panel
)

// PageContext is the classification of a page path used to compute link targets.
type PageContext struct {
	IsIndexPage              bool   // the site home page
	IsBlogListPage           bool   // the blog listing page
	IsInsideBlogSubdirectory bool   // a page under /blog/
	LinkPrefix               string // "../" inside the blog folder, otherwise empty
}

// Classify derives the PageContext for the given document path.
// Any path is accepted; unrecognized ones get the zero PageContext.
func Classify(p string) PageContext {
	var ctx PageContext
	ctx.IsIndexPage = p == "" ||
		strings.HasSuffix(p, "/") ||
		strings.HasSuffix(p, "/index.html") ||
		p == "index.html"
	// index wins if a path could somehow match both
	if !ctx.IsIndexPage {
		ctx.IsBlogListPage = strings.HasSuffix(p, "/blog.html") || p == "blog.html"
	}
	ctx.IsInsideBlogSubdirectory = strings.Contains(p, "/blog/") && !ctx.IsBlogListPage
	if ctx.IsInsideBlogSubdirectory {
		ctx.LinkPrefix = "../"
	}
	return ctx
}

// NavLink is one entry of the navigation panel.
type NavLink struct {
	Label             string // Text shown for the link
	Target            string // href of the link
	ClosesMenuOnIndex bool   // Activating the link closes the panel
}

// section is a link into a section of the index page.
type section struct {
	label    string
	fragment string
}

var (
	about    = section{"About", "about"}
	research = section{"Research", "research"}
	teaching = section{"Teaching", "teaching"}
	misc     = section{"Misc", "miscellaneous"}
)

// BuildLinks returns the navigation links for ctx, always in the order
// About, Blog, Research, Teaching, Misc.
func BuildLinks(ctx PageContext) []NavLink {
	blog := NavLink{Label: "Blog", Target: ctx.LinkPrefix + "blog.html"}
	if ctx.IsBlogListPage {
		blog.Target = "blog.html"
	}
	return []NavLink{
		sectionLink(ctx, about),
		blog,
		sectionLink(ctx, research),
		sectionLink(ctx, teaching),
		sectionLink(ctx, misc),
	}
}

func sectionLink(ctx PageContext, s section) NavLink {
	if ctx.IsIndexPage {
		return NavLink{Label: s.label, Target: "#" + s.fragment, ClosesMenuOnIndex: true}
	}
	return NavLink{Label: s.label, Target: ctx.LinkPrefix + "index.html#" + s.fragment}
}
