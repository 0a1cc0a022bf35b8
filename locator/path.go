package locator

import (
	"path/filepath"
	"strings"
)

// Separator delimits logical path segments.
const Separator = "/"

// NormalizePath appends the separator when missing; normalized paths are returned unchanged.
func NormalizePath(path string) string {
	if strings.HasSuffix(path, Separator) {
		return path
	}
	return path + Separator
}

// FileURL converts an absolute filesystem path to a file URL.
func FileURL(abs string) string {
	abs = filepath.ToSlash(abs)
	if strings.HasPrefix(abs, "/") {
		return "file://" + abs
	}
	return "file:///" + abs
}
