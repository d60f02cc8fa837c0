/*
Package virtual implements a "virtual" view over a fs.FS that makes it suitable for serving a
personal web site of HTML and Markdown pages, each decorated with the site navigation menu.

A special file "site.cfg" at the root exposes settings you can use via the Config() function.
This file is hidden from view.

A special folder "template" at the root holds HTML templates should you want to customize. At
minimum, a template called "default" is required for handling Markdown files.

Hidden files and folders (those starting with ".") are ignored.

# Navigation Menu

Every HTML page served by the file system, whether it exists on disk or is rendered from Markdown,
gets the navigation menu from package nav inserted as the first children of its <body>. The menu
links depend on where the page lives:

	/index.html, /, /people/       links point at sections of the same page and close the menu
	/blog.html                     links point at index.html#section
	/blog/post1.html               links point at ../index.html#section and ../blog.html

Pages that already contain an element with id "sidebar" do not get a second menu. A page whose menu
cannot be mounted is served without it. The analytics tag, MathJax, and the decorative SVG filter are
added when site.cfg asks for them.

# Special File Handling

When an endpoint like "/foo/bar.html" is called and it does not exist, the virtual file system looks for
a Markdown file named "/foo/bar.md". If present, a "virtual" file "/foo/bar.html" is presented that will
render the underlying Markdown file into HTML. In this case, the underlying Markdown file,
"/foo/bar.md", is listed as "/foo/bar.html" in directory listings. By default, a template called "default"
is used to render the Markdown, unless the front matter of the file specifies a different template.

# Front Matter

Markdown files may contain front matter which is in TOML format. The front matter is delimited by "+++" at
the start and end. For example:

	+++
	# This is my front matter
	title = "My glorious page"
	+++
	# This is my Heading
	This is my [Markdown](https://en.wikipedia.org/wiki/Markdown).

Front matter may include:

	Name       Type                  Description
	---------  -----------------     -----------------------------------------
	title         string             Title of page
	date          time               Publish date; the page does not exist before it
	tags          array of strings   Tags for the articles
	template      string             Override the template to render this file
	redirect      string             Used by the default template to issue an HTML meta-tag redirect
	expires       duration           Expiry for pages that need their own Expires header

# Templates

The system uses standard Go templates from the `html/template` package. Templates are stored in the
"template" top-level folder with the extension ".html". Templates are passed page information
(virtual.PageInfo), front matter (virtual.FrontMatter), and rendered HTML from Markdown (template.HTML).
The following helper functions are available:

	dir(path string) []virtual.File
		Return the pages of the given folder, excluding special files and subfolders
	sortbyname([]virtual.File) []virtual.File
		Sort by name (reverse)
	sortbytime([]virtual.File) []virtual.File
		Sort by time (reverse)
	match(string, ...string) bool
		Match string against file patterns
	filter([]virtual.File, ...string) []virtual.File
		Filter list against file patterns
	join(parts ...string) string
		The same as path.Join
	ext(path string) string
		The same as path.Ext
	prev([]virtual.File, string) *virtual.File
		Find the previous file based on Filename
	next([]virtual.File, string) *virtual.File
		Find the next file based on Filename
	reverse([]virtual.File) []virtual.File
		Reverse the list
	trimsuffix, trimprefix, trimspace
		The same as the strings functions
	markdown(string) template.HTML
		Render Markdown file into HTML
	frontmatter(string) *virtual.FrontMatter
		Read front matter from file
	now() time.Time
		Current time
	navlinks(urlPath string) []nav.NavLink
		The menu links for a page served at urlPath
	classify(urlPath string) nav.PageContext
		The page context the menu is built from

Two templates are provided to every template set unless the site defines its own: "style", the
CSS for the menu, and "navfooter", which repeats the menu links in a footer. Page.URLPath is the
path the page is served at, which differs from its file for error pages.

# Errors

Create 404.md and 500.md (or .html) files in the root of the file system to customize error pages;
web.ErrorHandler serves 404.html and 500.html when the file system returns an error. Through
ReadPage, their menu links are built for the URL that was requested rather than for the root.
The "dir" template function does not list them.
*/
package virtual

import (
	"errors"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// FS provides a virtual view of the file system suitable for serving
// a decorated web site.
type FS struct {
	fs       fs.FS
	cfg      Config
	policy   *bluemonday.Policy
	tpl      *template.Template
	tplMutex sync.RWMutex
}

// New returns a new FS that presents a virtual view of innerFS.
func New(innerFS fs.FS) (*FS, error) {
	cfg, err := loadConfig(innerFS)
	if err != nil {
		return nil, err
	}
	var vfs = FS{
		fs:     innerFS,
		cfg:    cfg,
		policy: bluemonday.UGCPolicy(),
	}
	_, err = vfs.loadTemplates()
	if err != nil {
		return nil, err
	}

	return &vfs, nil
}

// Open opens the named file.
//
// When Open returns an error, it should be of type *fs.PathError
// with the Op field set to "open", the Path field set to name,
// and the Err field describing the problem.
//
// Open should reject attempts to open names that do not satisfy
// fs.ValidPath(name), returning a *PathError with Err set to
// ErrInvalid or ErrNotExist.
func (vfs *FS) Open(name string) (fs.File, error) {
	return vfs.open(name, "/"+name)
}

// ReadPage returns the contents of the named file with its menu built for
// urlPath instead of the file's own location. It is used for pages such as
// 404.html that are served in place of the requested URL.
func (vfs *FS) ReadPage(name, urlPath string) ([]byte, error) {
	f, err := vfs.open(name, urlPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// open opens the named file, decorating HTML pages as if served at urlPath.
func (vfs *FS) open(name, urlPath string) (fs.File, error) {
	// Make sure the path is valid per fs rules
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	// Don't show hidden or special files
	if name != "." && (isHiddenFile(name) || containsSpecialFile(name)) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	// open the file with the underlying file system
	f, err := vfs.fs.Open(name)
	if err != nil {
		// for HTML files that don't exist, check for a Markdown file
		if errors.Is(err, fs.ErrNotExist) && path.Ext(name) == ".html" {
			mdf, err2 := vfs.fs.Open(strings.TrimSuffix(name, ".html") + ".md")
			if err2 == nil {
				defer mdf.Close()
				return vfs.newMarkdownFile(mdf, name, urlPath)
			}
		}
		// no matching underlying file; return error from opening the underlying file
		return nil, err
	}
	// check for directory
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	// Directories need to be virtual so that we don't
	// accidentally pick up the wrong ReadDir implementation.
	if fi.IsDir() {
		// don't close f because it will be used for ReadDir
		return &virtualDir{File: f, path: name}, nil
	}
	// HTML pages get the navigation menu.
	if path.Ext(name) == ".html" {
		defer f.Close()
		return vfs.newPageFile(f, name, urlPath)
	}
	return f, nil
}
