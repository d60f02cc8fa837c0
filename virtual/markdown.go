package virtual

import (
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/russross/blackfriday/v2"
)

// pathToMarkdown takes a URL path and converts it into the path to the associated Markdown file.
func pathToMarkdown(filename string) string {
	// check for folder - if so, add index.md
	if strings.HasSuffix(filename, "/") {
		filename += "index.md"
	}
	filename = path.Clean(filename)
	// removing leading / so we find it on the file system
	filename = strings.TrimPrefix(filename, "/")
	switch path.Ext(filename) {
	case "":
		filename += ".md"
	case ".html":
		filename = strings.TrimSuffix(filename, ".html") + ".md"
	}
	return filename
}

// markdownToHTML renders Markdown, sanitizing the result if the site asks for it.
func (vfs *FS) markdownToHTML(r []byte) template.HTML {
	b := blackfriday.Run(r, blackfriday.WithExtensions(blackfriday.CommonExtensions|blackfriday.Footnotes))
	if vfs.cfg.Sanitize {
		b = vfs.policy.SanitizeBytes(b)
	}
	return template.HTML(b)
}

// parseMarkdown splits b into front matter and content, filling front
// from the former and rendering the latter.
func (vfs *FS) parseMarkdown(b []byte, front *FrontMatter) (template.HTML, error) {
	fm, r := extractFrontMatter(b)
	if len(fm) > 0 {
		if err := toml.Unmarshal(fm, front); err != nil {
			return "", err
		}
	}
	return vfs.markdownToHTML(r), nil
}

// renderMarkdown renders the markdown for the given file and returns the frontmatter.
func (vfs *FS) renderMarkdown(filename string) (*FrontMatter, template.HTML, error) {
	filename = pathToMarkdown(filename)
	b, err := fs.ReadFile(vfs.fs, filename)
	if err != nil {
		return nil, "", fmt.Errorf("renderMarkdown: %w", err)
	}
	var front FrontMatter
	md, err := vfs.parseMarkdown(b, &front)
	if err != nil {
		return nil, "", fmt.Errorf("renderMarkdown: %w", err)
	}
	return &front, md, nil
}

// md convert the given markdown file to HTML and is used in templates.
func (vfs *FS) md(filename string) template.HTML {
	_, md, err := vfs.renderMarkdown(filename)
	if err != nil {
		log.Printf("md: %s", err)
		return ""
	}
	return md
}

// fm returns front matter for the given file and is used in templates.
func (vfs *FS) fm(filename string) *FrontMatter {
	fm, _, err := vfs.renderMarkdown(filename)
	if err != nil {
		log.Printf("fm: %s", err)
		return nil
	}
	return fm
}
