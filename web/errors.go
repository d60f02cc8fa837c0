package web

import (
	"io/fs"
	"log"
	"net/http"
	"strconv"
)

// PageReader is implemented by file systems that decorate a page for a URL
// other than its own, such as virtual.FS.
type PageReader interface {
	ReadPage(name, urlPath string) ([]byte, error)
}

// ErrorHandler captures 404 and 500 errors and serves /404.html or /500.html from the file system.
// When fsys is a PageReader, the page is read for the requested URL path so that its
// relative links resolve from where the browser actually is.
func ErrorHandler(h http.Handler, fsys fs.FS) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseWriter{
			ResponseWriter: w,
			fsys:           fsys,
			path:           r.URL.Path,
		}
		h.ServeHTTP(writer, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	fsys    fs.FS
	path    string // requested URL path
	noWrite bool
	err     error
}

// readErrorPage reads the error page file for the requested path.
func (w *responseWriter) readErrorPage(file string) ([]byte, error) {
	if pr, ok := w.fsys.(PageReader); ok {
		return pr.ReadPage(file, w.path)
	}
	return fs.ReadFile(w.fsys, file)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

// errorPage returns the page to serve for the status code, if any.
func errorPage(statusCode int) string {
	switch statusCode {
	case http.StatusNotFound:
		return "404.html"
	case http.StatusInternalServerError:
		return "500.html"
	}
	return ""
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if file := errorPage(statusCode); file != "" {
		// special processing of response
		b, err := w.readErrorPage(file)
		if err == nil {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("Content-Length", strconv.Itoa(len(b)))
			w.Header().Del("X-Content-Type-Options")
			w.ResponseWriter.WriteHeader(statusCode)
			w.noWrite = true
			_, w.err = w.ResponseWriter.Write(b)
			if w.err != nil {
				log.Printf("ErrorHandler: %s", w.err)
			}
			return
		}
	}
	// normal processing
	w.ResponseWriter.WriteHeader(statusCode)
}
