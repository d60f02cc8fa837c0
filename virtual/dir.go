package virtual

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"
	"time"
)

// virtualDir is a directory of the virtual file system. Markdown files are
// listed under their .html names and special files are left out.
type virtualDir struct {
	fs.File

	path    string
	entries []fs.DirEntry
	loaded  bool
}

// load reads and translates the underlying directory entries once.
func (d *virtualDir) load() error {
	if d.loaded {
		return nil
	}
	rdf, ok := d.File.(fs.ReadDirFile)
	if !ok {
		return &fs.PathError{Op: "readdir", Path: d.path, Err: errors.New("not implemented")}
	}
	underlying, err := rdf.ReadDir(-1)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(underlying))
	for _, entry := range underlying {
		seen[entry.Name()] = true
	}
	for _, entry := range underlying {
		name := entry.Name()
		full := path.Join(d.path, name)
		if isHiddenFile(full) || containsSpecialFile(name) {
			continue
		}
		if !entry.IsDir() && path.Ext(name) == ".md" {
			html := strings.TrimSuffix(name, ".md") + ".html"
			if seen[html] {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				return err
			}
			d.entries = append(d.entries, virtualDirEntry{virtualFileInfo{FileInfo: info, name: html, size: -1}})
			continue
		}
		d.entries = append(d.entries, entry)
	}
	sort.Slice(d.entries, func(i, j int) bool { return d.entries[i].Name() < d.entries[j].Name() })
	d.loaded = true
	return nil
}

// ReadDir reads the contents of the directory and returns
// a slice of up to n DirEntry values in directory order.
// Subsequent calls on the same file will yield further DirEntry values.
//
// If n > 0, ReadDir returns at most n DirEntry structures.
// In this case, if ReadDir returns an empty slice, it will return
// a non-nil error explaining why.
// At the end of a directory, the error is io.EOF.
//
// If n <= 0, ReadDir returns all the DirEntry values from the directory
// in a single slice. In this case, if ReadDir succeeds (reads all the way
// to the end of the directory), it returns the slice and a nil error.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if err := d.load(); err != nil {
		return nil, err
	}
	if n <= 0 {
		r := d.entries
		d.entries = nil
		return r, nil
	}
	if len(d.entries) == 0 {
		return nil, io.EOF
	}
	if n > len(d.entries) {
		n = len(d.entries)
	}
	r := d.entries[:n]
	d.entries = d.entries[n:]
	return r, nil
}

// File holds data about a page endpoint.
type File struct {
	FrontMatter FrontMatter
	Filename    string
}

// dir returns a slice of the pages in a folder and is used in templates.
func (vfs *FS) dir(folderpath string) []File {
	folderpath = "./" + strings.TrimPrefix(folderpath, "/")
	folderpath = path.Clean(folderpath)
	entries, err := fs.ReadDir(vfs, folderpath)
	if err != nil {
		log.Printf("dir: %s", err)
		return nil
	}
	now := time.Now()
	f := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == "index.html" || isErrorPage(entry.Name()) {
			continue
		}
		fm := FrontMatter{
			Title: strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())),
		}
		fi, err := entry.Info()
		if err == nil {
			fm.Date = fi.ModTime().Local()
		}
		if path.Ext(entry.Name()) == ".html" {
			err = vfs.readFrontMatter(path.Join(folderpath, strings.TrimSuffix(entry.Name(), ".html")+".md"), &fm)
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Printf("dir: %s", err)
			}
			// not published yet
			if now.Before(fm.Date) {
				continue
			}
		}
		f = append(f, File{FrontMatter: fm, Filename: entry.Name()})
	}
	return f
}

// sortByTime sorts the files by the time in reverse order
func sortByTime(f []File) []File {
	sort.Slice(f, func(i, j int) bool { return f[j].FrontMatter.Date.Before(f[i].FrontMatter.Date) })
	return f
}

// sortByName sorts the files by name in reverse order
func sortByName(f []File) []File {
	sort.Slice(f, func(i, j int) bool { return f[j].Filename < f[i].Filename })
	return f
}

// reverse reverses the order of the file list.
func reverse(f []File) []File {
	j := len(f) - 1
	for i := 0; i < len(f)/2; i++ {
		f[i], f[j] = f[j], f[i]
		j--
	}
	return f
}

// filter trims out non-matching files based on name.
func filter(f []File, pat ...string) []File {
	var r []File
	for i := range f {
		if match(f[i].Filename, pat...) {
			r = append(r, f[i])
		}
	}
	return r
}

// match uses path.Match to test for a match.
func match(s string, pat ...string) bool {
	for i := range pat {
		b, err := path.Match(pat[i], s)
		if err != nil {
			log.Printf("match: %s", err)
		}
		if b {
			return true
		}
	}
	return false
}

// next returns the next file in the list.
func next(f []File, current string) *File {
	for i := range f {
		if f[i].Filename == current {
			if i > 0 {
				return &f[i-1]
			}
			return nil
		}
	}
	return nil
}

// prev returns the previous file in the list.
func prev(f []File, current string) *File {
	for i := range f {
		if f[i].Filename == current {
			if i < len(f)-1 {
				return &f[i+1]
			}
			return nil
		}
	}
	return nil
}
