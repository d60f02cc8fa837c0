package virtual

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/ancientlore/sitenav/nav"
)

//go:embed default.html
var defaultTemplate string

//go:embed menu.css
var menuStyle string

// siteTemplates are added to every template set, default or custom, unless
// the site defines a template of the same name. "style" holds the menu CSS and
// "navfooter" repeats the menu links at the bottom of the page for readers
// without scripts.
var siteTemplates = []struct{ name, text string }{
	{"style", "<style>\n" + menuStyle + "</style>"},
	{"navfooter", `<footer class="site-nav"><ul>{{range navlinks .Page.URLPath}}<li><a href="{{.Target}}">{{.Label}}</a></li>{{end}}</ul></footer>`},
}

// PageInfo has information about the current page.
type PageInfo struct {
	Path     string // path from URL
	Filename string // end portion (file) from URL
	URLPath  string // URL path the page is served at; differs for error pages
}

// Pathname joins the path and filename.
func (p PageInfo) Pathname() string {
	return path.Join(p.Path, p.Filename)
}

// data is what is passed to markdown templates.
type data struct {
	FrontMatter FrontMatter   // front matter from Markdown file or defaults
	Page        PageInfo      // information about current page
	Content     template.HTML // rendered Markdown
}

// navLinks returns the menu links for a page served at urlPath.
func navLinks(urlPath string) []nav.NavLink {
	return nav.BuildLinks(nav.Classify(urlPath))
}

// getTemplates returns the templates.
func (vfs *FS) getTemplates() *template.Template {
	vfs.tplMutex.RLock()
	defer vfs.tplMutex.RUnlock()
	return vfs.tpl
}

// funcMap returns the helper functions available to templates.
func (vfs *FS) funcMap() template.FuncMap {
	return template.FuncMap{
		"dir":         vfs.dir,
		"sortbyname":  sortByName,
		"sortbytime":  sortByTime,
		"match":       match,
		"filter":      filter,
		"join":        path.Join,
		"ext":         path.Ext,
		"prev":        prev,
		"next":        next,
		"reverse":     reverse,
		"trimsuffix":  strings.TrimSuffix,
		"trimprefix":  strings.TrimPrefix,
		"trimspace":   strings.TrimSpace,
		"markdown":    vfs.md,
		"frontmatter": vfs.fm,
		"now":         time.Now,
		"navlinks":    navLinks,
		"classify":    nav.Classify,
	}
}

// addSiteTemplates adds the menu templates the site did not define itself.
func addSiteTemplates(tpl *template.Template) error {
	for _, st := range siteTemplates {
		if tpl.Lookup(st.name) != nil {
			continue
		}
		if _, err := tpl.New(st.name).Parse(st.text); err != nil {
			return fmt.Errorf("addSiteTemplates: %s: %w", st.name, err)
		}
	}
	return nil
}

// loadTemplates loads and parses the HTML templates, returning true if custom templates were found.
// The site templates are attached to either set.
func (vfs *FS) loadTemplates() (bool, error) {
	var (
		tpl    *template.Template
		custom bool
		err    error
	)
	root := template.New("site").Funcs(vfs.funcMap())
	fi, statErr := fs.Stat(vfs.fs, "template")
	if errors.Is(statErr, fs.ErrNotExist) || (statErr == nil && !fi.IsDir()) {
		tpl, err = root.Parse(defaultTemplate)
	} else {
		custom = true
		tpl, err = root.ParseFS(vfs.fs, "template/*.html")
	}
	if err != nil {
		return custom, fmt.Errorf("loadTemplates: %w", err)
	}
	if err := addSiteTemplates(tpl); err != nil {
		return custom, fmt.Errorf("loadTemplates: %w", err)
	}

	vfs.tplMutex.Lock()
	defer vfs.tplMutex.Unlock()
	vfs.tpl = tpl
	return custom, nil
}
