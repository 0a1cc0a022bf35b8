package locator

import (
	"strings"
	"testing"
)

func TestParseRoot(t *testing.T) {
	tests := []struct {
		name     string
		location string
		kind     Kind
		archive  string
		prefix   string
	}{
		{
			name:     "file directory",
			location: "file:///srv/app/cql/migrations/",
			kind:     KindDirectory,
		},
		{
			name:     "mem directory",
			location: "mem://localhost/cql/migrations/",
			kind:     KindDirectory,
		},
		{
			name:     "jar form",
			location: "jar:file:/srv/lib/app.jar!/cql/migrations/",
			kind:     KindArchive,
			archive:  "file:/srv/lib/app.jar",
			prefix:   "cql/migrations/",
		},
		{
			name:     "nested zip form",
			location: "file:///srv/lib/app.jar/zip://localhost/cql/migrations/",
			kind:     KindArchive,
			archive:  "file:///srv/lib/app.jar",
			prefix:   "cql/migrations/",
		},
		{
			name:     "jar without entry separator",
			location: "jar:file:/srv/lib/app.jar",
			kind:     KindUnknown,
		},
		{
			name:     "http is not a search root",
			location: "https://example.com/cql/migrations/",
			kind:     KindUnknown,
		},
		{
			name:     "relative path",
			location: "cql/migrations/",
			kind:     KindUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := ParseRoot(tt.location)
			if root.Kind != tt.kind {
				t.Fatalf("Kind=%v want %v", root.Kind, tt.kind)
			}
			if root.URL != tt.location {
				t.Fatalf("URL=%q want %q", root.URL, tt.location)
			}
			if root.Archive != tt.archive || root.Prefix != tt.prefix {
				t.Fatalf("archive=%q prefix=%q want %q %q", root.Archive, root.Prefix, tt.archive, tt.prefix)
			}
		})
	}
}

func TestParseRoot_BarePath(t *testing.T) {
	root := ParseRoot("/srv/app/cql/migrations/")
	if root.Kind != KindDirectory {
		t.Fatalf("Kind=%v want directory", root.Kind)
	}
	if root.URL != "file:///srv/app/cql/migrations/" {
		t.Fatalf("URL=%q", root.URL)
	}
}

func TestNewArchiveRoot(t *testing.T) {
	root := NewArchiveRoot("/srv/lib/app.jar", "/cql/migrations/")
	if root.URL != "file:///srv/lib/app.jar/zip://localhost/cql/migrations/" {
		t.Fatalf("URL=%q", root.URL)
	}
	parsed := ParseRoot(root.URL)
	if parsed != root {
		t.Fatalf("ParseRoot(%q)=%+v want %+v", root.URL, parsed, root)
	}
	p, ok := root.LocalArchive()
	if !ok || p != "/srv/lib/app.jar" {
		t.Fatalf("LocalArchive()=%q,%v", p, ok)
	}
}

func TestLocalPath(t *testing.T) {
	tests := []struct {
		location string
		path     string
		ok       bool
	}{
		{location: "file:///srv/lib/app%20v1.jar", path: "/srv/lib/app v1.jar", ok: true},
		{location: "file:/srv/lib/app.jar", path: "/srv/lib/app.jar", ok: true},
		{location: "/srv/lib/app.jar", path: "/srv/lib/app.jar", ok: true},
		{location: "gs://bucket/app.jar", ok: false},
		{location: "mem://localhost/app.jar", ok: false},
	}
	for _, tc := range tests {
		p, ok := LocalPath(tc.location)
		if ok != tc.ok || p != tc.path {
			t.Fatalf("LocalPath(%q)=%q,%v want %q,%v", tc.location, p, ok, tc.path, tc.ok)
		}
	}
}

func TestRoot_StorageURL(t *testing.T) {
	root := ParseRoot("file:/srv/app/cql/migrations/")
	if got := root.StorageURL(); got != "file:///srv/app/cql/migrations/" {
		t.Fatalf("StorageURL()=%q", got)
	}
	root = ParseRoot("gs://bucket/cql/migrations/")
	if got := root.StorageURL(); !strings.HasPrefix(got, "gs://") {
		t.Fatalf("StorageURL()=%q", got)
	}
}
