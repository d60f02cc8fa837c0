package virtual

import (
	"io"
	"io/fs"
)

// virtualFileInfo holds the metadata about a virtual file, which may be
// named and sized differently from the underlying file.
type virtualFileInfo struct {
	fs.FileInfo

	name string // Virtual name of the file
	size int64  // Length of the rendered data, or -1 to use the underlying size
}

// Name returns the base name of the file.
func (fi virtualFileInfo) Name() string {
	return fi.name
}

// Size reports the length of the file.
func (fi virtualFileInfo) Size() int64 {
	if fi.size < 0 {
		return fi.FileInfo.Size()
	}
	return fi.size
}

// virtualDirEntry is a directory entry for a virtual file.
// It is lightweight in that it isn't as filled out as if you called Stat
// on the file itself.
type virtualDirEntry struct {
	virtualFileInfo
}

// Type returns the type bits for the entry.
// The type bits are a subset of the usual FileMode bits, those returned by the FileMode.Type method.
func (di virtualDirEntry) Type() fs.FileMode {
	return di.virtualFileInfo.Mode().Type()
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
// The returned info is from the time of the directory read.
func (di virtualDirEntry) Info() (fs.FileInfo, error) {
	return di.virtualFileInfo, nil
}

// renderFile is an in-memory file holding rendered page data.
type renderFile struct {
	info   virtualFileInfo
	reader io.ReadSeeker // Main Reader to use
}

// Stat returns a FileInfo describing the file.
func (f *renderFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Read reads up to len(b) bytes from the File. It returns the number of bytes read
// and any error encountered. At end of file, Read returns 0, io.EOF.
func (f *renderFile) Read(b []byte) (int, error) {
	return f.reader.Read(b)
}

// Seek sets the offset for the next Read or Write to offset, interpreted according
// to whence: io.SeekStart means relative to the start of the file, io.SeekCurrent
// means relative to the current offset, and io.SeekEnd means relative to the end.
func (f *renderFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// Close closes the file. Rendered files are in memory, so this function does nothing.
func (f *renderFile) Close() error {
	return nil
}
