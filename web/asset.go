package web

import (
	"bytes"
	"net/http"
	"time"
)

// AssetHandler serves an in-memory asset such as an embedded script.
// Conditional and range requests are handled by http.ServeContent.
func AssetHandler(contentType string, body []byte, modTime time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		http.ServeContent(w, r, "", modTime, bytes.NewReader(body))
	})
}
