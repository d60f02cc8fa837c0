package virtual

import (
	"bytes"
	"errors"
	"log"

	"github.com/PuerkitoBio/goquery"
	"github.com/ancientlore/sitenav/decor"
	"github.com/ancientlore/sitenav/dom"
	"github.com/ancientlore/sitenav/menu"
	"github.com/ancientlore/sitenav/nav"
)

// decorate injects the navigation menu and the configured decorations into the
// HTML page b served at the URL path urlPath. Pages that cannot be parsed are
// returned as-is.
func (vfs *FS) decorate(b []byte, urlPath string) []byte {
	doc, err := dom.Parse(bytes.NewReader(b))
	if err != nil {
		log.Printf("decorate: %s: %s", urlPath, err)
		return b
	}
	if !vfs.cfg.Nav.Disabled {
		if err := mountMenu(doc, urlPath, vfs.cfg.Nav.Options()); err != nil {
			log.Printf("decorate: %s: %s", urlPath, err)
			var pe *dom.PreconditionError
			if !errors.As(err, &pe) {
				return b
			}
		}
	}
	if vfs.cfg.Nav.Filter != nil {
		if _, err := decor.InjectFilter(doc, *vfs.cfg.Nav.Filter); err != nil {
			log.Printf("decorate: %s: %s", urlPath, err)
		}
	}
	if _, err := decor.InjectAnalytics(doc, vfs.cfg.Analytics.ID); err != nil {
		log.Printf("decorate: %s: %s", urlPath, err)
	}
	if vfs.cfg.Math.Enabled {
		if _, err := decor.InjectMath(doc); err != nil {
			log.Printf("decorate: %s: %s", urlPath, err)
		}
	}
	var buf bytes.Buffer
	if err := dom.Render(&buf, doc); err != nil {
		log.Printf("decorate: %s: %s", urlPath, err)
		return b
	}
	return buf.Bytes()
}

// mountMenu classifies urlPath, renders its menu, mounts it at the start of
// the body, and wires it so the page is served with the menu closed.
// Pages that already carry a menu panel are left alone.
func mountMenu(doc *goquery.Document, urlPath string, opts nav.Options) error {
	if dom.ByID(doc, nav.PanelID).Length() > 0 {
		return nil
	}
	links := nav.BuildLinks(nav.Classify(urlPath))
	frag, err := nav.Render(links, opts)
	if err != nil {
		return err
	}
	if err := dom.Mount(doc, frag); err != nil {
		return err
	}
	if _, ok := menu.Wire(doc); !ok {
		log.Printf("mountMenu: %s: menu elements missing after mount", urlPath)
	}
	return nil
}
