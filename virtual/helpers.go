package virtual

import (
	"strings"
)

// hiddenFiles are top-level entries never shown outside the file system.
var hiddenFiles = []string{
	"template",
	ConfigFile,
}

// isHiddenFile returns true if the given file is, or is inside, an entry
// considered hidden from outside view.
func isHiddenFile(name string) bool {
	top, _, _ := strings.Cut(name, "/")
	for _, s := range hiddenFiles {
		if top == s {
			return true
		}
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes, as guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// isErrorPage reports whether the file is one of the error pages served by web.ErrorHandler.
func isErrorPage(name string) bool {
	return name == "404.html" || name == "500.html"
}
