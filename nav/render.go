package nav

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
)

// DefaultScriptPath is where servers conventionally expose Script.
const DefaultScriptPath = "/_nav/menu.js"

// Script is the client-side wiring for the rendered menu. It binds the same
// transitions as package menu using the element IDs and CloseAttr.
//
//go:embed menu.js
var Script []byte

//go:embed menu.html
var menuTemplate string

var tpl = template.Must(template.New("menu").Parse(menuTemplate))

// Options selects the variant of the rendered menu.
type Options struct {
	UseOverlay           bool   // render a full-screen dimming overlay
	UseViewportHeightFix bool   // ask the client script to track the visual viewport height
	ScriptPath           string // URL of Script; no script tag when empty
}

// menuData is what is passed to the menu template.
type menuData struct {
	Options
	Links     []NavLink
	ToggleID  string
	PanelID   string
	OverlayID string
}

// Render produces the menu markup for links. The output depends only on
// its arguments, so repeated calls yield identical fragments.
func Render(links []NavLink, opts Options) (template.HTML, error) {
	var buf bytes.Buffer
	err := tpl.Execute(&buf, menuData{
		Options:   opts,
		Links:     links,
		ToggleID:  ToggleID,
		PanelID:   PanelID,
		OverlayID: OverlayID,
	})
	if err != nil {
		return "", fmt.Errorf("Render: %w", err)
	}
	return template.HTML(buf.String()), nil
}
