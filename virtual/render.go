package virtual

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path"
	"time"
)

// newRenderFile returns an in-memory file for b, named after pathname and
// otherwise described by fi.
func newRenderFile(fi fs.FileInfo, pathname string, b []byte) *renderFile {
	return &renderFile{
		info: virtualFileInfo{
			FileInfo: fi,
			name:     path.Base(pathname),
			size:     int64(len(b)),
		},
		reader: bytes.NewReader(b),
	}
}

// newPageFile reads an HTML page and decorates it with the navigation menu
// for urlPath.
func (vfs *FS) newPageFile(f fs.File, pathname, urlPath string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newPageFile: %w", err)
	}
	return newRenderFile(fi, pathname, vfs.decorate(b, urlPath)), nil
}

// newMarkdownFile reads the underlying markdown file, extracts the front matter,
// renders the markdown, executes the specified template, and decorates the
// resulting page for urlPath. Pages dated in the future do not exist yet.
func (vfs *FS) newMarkdownFile(f fs.File, pathname, urlPath string) (fs.File, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}

	front := FrontMatter{Date: fi.ModTime()}
	content, err := vfs.parseMarkdown(b, &front)
	if err != nil {
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}
	if time.Now().Before(front.Date) {
		return nil, &fs.PathError{Op: "open", Path: pathname, Err: fs.ErrNotExist}
	}

	// prepare template data
	p, bn := path.Split(pathname)
	var data = data{
		FrontMatter: front,
		Page: PageInfo{
			Path:     "/" + p,
			Filename: bn,
			URLPath:  urlPath,
		},
		Content: content,
	}

	// Render the HTML template
	templateName := "default"
	if data.FrontMatter.Template != "" {
		templateName = data.FrontMatter.Template
	}
	tpl := vfs.getTemplates()
	var wtr bytes.Buffer
	err = tpl.ExecuteTemplate(&wtr, templateName, data)
	if err != nil {
		log.Printf("newMarkdownFile: %s", err)
		return nil, fmt.Errorf("newMarkdownFile: %w", err)
	}

	return newRenderFile(fi, pathname, vfs.decorate(wtr.Bytes(), urlPath)), nil
}
