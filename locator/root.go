package locator

import (
	neturl "net/url"
	"path/filepath"
	"strings"
)

// Kind classifies a search root.
type Kind int

const (
	KindUnknown Kind = iota
	KindDirectory
	KindArchive
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindArchive:
		return "archive"
	default:
		return "unknown"
	}
}

const (
	// ArchiveScheme is the nested scheme used to address zip entries: <container>/zip://localhost/<prefix>
	ArchiveScheme = "zip"
	// ArchiveHost is the host used in nested archive locators.
	ArchiveHost = "localhost"
	jarScheme   = "jar"
	jarSep      = "!/"
)

var nestedArchive = "/" + ArchiveScheme + "://"

// directorySchemes lists schemes whose locators address directory-like storage.
var directorySchemes = map[string]bool{
	"file": true,
	"mem":  true,
	"gs":   true,
	"s3":   true,
}

// Root is a resolved location where a logical path may be rooted.
type Root struct {
	Kind Kind
	// URL is the base locator; emitted locators are URL + relative name.
	URL string
	// Archive is the container locator, set for archive roots.
	Archive string
	// Prefix is the internal entry prefix, set for archive roots.
	Prefix string
}

// NewDirectoryRoot creates a directory root, converting a bare absolute path to a file URL.
func NewDirectoryRoot(location string) Root {
	if isLocalPath(location) {
		location = FileURL(location)
	}
	return Root{Kind: KindDirectory, URL: location}
}

// NewArchiveRoot creates an archive root in the nested zip form.
func NewArchiveRoot(archive, prefix string) Root {
	if isLocalPath(archive) {
		archive = FileURL(archive)
	}
	prefix = strings.TrimPrefix(prefix, Separator)
	return Root{
		Kind:    KindArchive,
		URL:     archive + nestedArchive + ArchiveHost + Separator + prefix,
		Archive: archive,
		Prefix:  prefix,
	}
}

// ParseRoot classifies a root locator. Recognized archive forms are
// jar:<container>!/<prefix> and <container>/zip://<host>/<prefix>.
func ParseRoot(location string) Root {
	if strings.HasPrefix(location, jarScheme+":") {
		inner := location[len(jarScheme)+1:]
		index := strings.Index(inner, jarSep)
		if index == -1 {
			return Root{Kind: KindUnknown, URL: location}
		}
		return Root{Kind: KindArchive, URL: location, Archive: inner[:index], Prefix: inner[index+len(jarSep):]}
	}
	if index := strings.Index(location, nestedArchive); index != -1 {
		rest := location[index+len(nestedArchive):]
		prefix := ""
		if i := strings.Index(rest, Separator); i != -1 {
			prefix = rest[i+1:]
		}
		return Root{Kind: KindArchive, URL: location, Archive: location[:index], Prefix: prefix}
	}
	if isLocalPath(location) {
		return NewDirectoryRoot(location)
	}
	if directorySchemes[Scheme(location)] {
		return Root{Kind: KindDirectory, URL: location}
	}
	return Root{Kind: KindUnknown, URL: location}
}

// LocalArchive returns the filesystem path of a file-backed archive container.
func (r Root) LocalArchive() (string, bool) {
	return LocalPath(r.Archive)
}

// StorageURL returns the root URL in the canonical form accepted by storage services.
func (r Root) StorageURL() string {
	if p, ok := LocalPath(r.URL); ok {
		return FileURL(p)
	}
	return r.URL
}

// Scheme returns the lower-cased scheme of a locator, or "" when absent.
func Scheme(location string) string {
	u, err := neturl.Parse(location)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}

// LocalPath returns the decoded filesystem path of a file locator or bare absolute path.
func LocalPath(location string) (string, bool) {
	if isLocalPath(location) {
		return location, true
	}
	if Scheme(location) != "file" {
		return "", false
	}
	u, err := neturl.Parse(location)
	if err != nil {
		return "", false
	}
	p := u.Path
	if p == "" {
		p = u.Opaque
	}
	if p == "" {
		return "", false
	}
	return filepath.FromSlash(p), true
}

func isLocalPath(location string) bool {
	if location == "" || strings.Contains(location, "://") {
		return false
	}
	return filepath.IsAbs(location)
}
