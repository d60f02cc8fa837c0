/*
Package menu models the open/closed state of a mounted navigation panel.

The state is held by the document itself: the panel carries the "active" class
while open, and the overlay (when present) and the toggle's aria-expanded
attribute mirror it. A Controller is obtained with Wire after the menu has been
mounted, and pointer activations are fed to it with Dispatch:

	c, ok := menu.Wire(doc)
	if !ok {
		return // no menu on this page; nothing to do
	}
	c.Dispatch(doc.Find("#" + nav.ToggleID)) // Closed -> Open

A Controller is not safe for concurrent use. Like event handlers in a page,
calls are expected to happen one at a time.
*/
package menu

import (
	"math"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/ancientlore/sitenav/dom"
	"github.com/ancientlore/sitenav/nav"
)

// State is the state of the panel.
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	switch s {
	case Closed:
		return "Closed"
	case Open:
		return "Open"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// AppHeightProperty is the CSS custom property set by Resize.
const AppHeightProperty = "--app-height"

// closeSelector matches the in-page links that close the menu.
const closeSelector = "a[" + nav.CloseAttr + "]"

// Controller enforces the panel state transitions for one document.
type Controller struct {
	doc     *goquery.Document
	toggle  *goquery.Selection
	panel   *goquery.Selection
	overlay *goquery.Selection // may be empty
}

// Wire finds the mounted menu elements in doc and returns a Controller in the
// Closed state. If the toggle or the panel is missing, Wire returns false and
// the page is left as it is.
func Wire(doc *goquery.Document) (*Controller, bool) {
	c := &Controller{
		doc:     doc,
		toggle:  dom.ByID(doc, nav.ToggleID).First(),
		panel:   dom.ByID(doc, nav.PanelID).First(),
		overlay: dom.ByID(doc, nav.OverlayID).First(),
	}
	if c.toggle.Length() == 0 || c.panel.Length() == 0 {
		return nil, false
	}
	c.set(Closed)
	return c, true
}

// State returns the current state, read from the panel.
func (c *Controller) State() State {
	if c.panel.HasClass(nav.ActiveClass) {
		return Open
	}
	return Closed
}

// HasOverlay reports whether the dimming overlay is in use.
func (c *Controller) HasOverlay() bool {
	return c.overlay.Length() > 0
}

func (c *Controller) set(s State) {
	if s == Open {
		c.panel.AddClass(nav.ActiveClass)
		c.overlay.AddClass(nav.ActiveClass)
		c.toggle.SetAttr("aria-expanded", "true")
		return
	}
	c.panel.RemoveClass(nav.ActiveClass)
	c.overlay.RemoveClass(nav.ActiveClass)
	c.toggle.SetAttr("aria-expanded", "false")
}

// Toggle flips the state.
func (c *Controller) Toggle() {
	if c.State() == Open {
		c.set(Closed)
	} else {
		c.set(Open)
	}
}

// Close moves to Closed. Closing a closed panel does nothing.
func (c *Controller) Close() {
	c.set(Closed)
}

// within reports whether target is el or one of its descendants.
func within(target, el *goquery.Selection) bool {
	return el.Length() > 0 && target.ClosestSelection(el).Length() > 0
}

// Dispatch handles a pointer activation on target and returns the resulting
// state. Target may be any node of the document, text nodes included.
func (c *Controller) Dispatch(target *goquery.Selection) State {
	switch {
	case within(target, c.toggle):
		c.Toggle()
	case within(target, c.overlay):
		c.Close()
	case within(target, c.panel):
		if within(target.Closest(closeSelector), c.panel) {
			c.Close()
		}
	default:
		c.Close()
	}
	return c.State()
}

// Resize records the visible viewport height in the AppHeightProperty of the
// <html> element, rounded to whole pixels.
func (c *Controller) Resize(height float64) {
	px := strconv.FormatFloat(math.Round(height), 'f', 0, 64) + "px"
	dom.SetStyleProperty(c.doc.Find("html").First(), AppHeightProperty, px)
}
