package resolver

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/viant/reslist/lister"
	"github.com/viant/reslist/locator"
)

type stubStorage struct {
	existing map[string]bool
}

func (s *stubStorage) Stat(ctx context.Context, URL string) (*lister.Object, error) {
	URL = strings.TrimSuffix(URL, "/")
	if !s.existing[URL] {
		return nil, nil
	}
	return &lister.Object{Name: filepath.Base(URL), URL: URL, IsDir: true}, nil
}

func (s *stubStorage) List(ctx context.Context, URL string) ([]lister.Object, error) {
	return nil, nil
}

func (s *stubStorage) Download(ctx context.Context, URL string) ([]byte, error) {
	return nil, os.ErrNotExist
}

func writeZip(t *testing.T, dir, name string, entries ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	writer := zip.NewWriter(f)
	for _, entry := range entries {
		if _, err := writer.Create(entry); err != nil {
			t.Fatalf("create entry: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return p
}

func TestSearchPath_Resolve(t *testing.T) {
	dir := t.TempDir()
	withMigrations := writeZip(t, dir, "app.jar", "cql/", "cql/migrations/", "cql/migrations/001.cql")
	withoutMigrations := writeZip(t, dir, "other.zip", "cql/other/002.cql")
	storage := &stubStorage{existing: map[string]bool{
		"file:///srv/resources/cql/migrations": true,
	}}
	searchPath := NewSearchPath(storage,
		"/srv/resources",
		withMigrations,
		"/srv/empty",
		withoutMigrations,
		"  ",
	)

	for _, query := range []string{"cql/migrations", "/cql/migrations/"} {
		roots, err := searchPath.Resolve(context.Background(), query)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", query, err)
		}
		want := []locator.Root{
			{Kind: locator.KindDirectory, URL: "file:///srv/resources/cql/migrations/"},
			{
				Kind:    locator.KindArchive,
				URL:     "file://" + withMigrations + "/zip://localhost/cql/migrations/",
				Archive: "file://" + withMigrations,
				Prefix:  "cql/migrations/",
			},
		}
		if !reflect.DeepEqual(roots, want) {
			t.Fatalf("Resolve(%q)=%+v want %+v", query, roots, want)
		}
	}
	if got := len(searchPath.Elements()); got != 4 {
		t.Fatalf("expected blank element dropped, got %d elements", got)
	}
}

func TestSearchPath_Resolve_UnreadableArchive(t *testing.T) {
	dir := t.TempDir()
	corrupt := filepath.Join(dir, "corrupt.jar")
	if err := os.WriteFile(corrupt, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := NewSearchPath(&stubStorage{}, corrupt).Resolve(context.Background(), "cql")
	var readErr *lister.ArchiveReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("expected ArchiveReadError, got %v", err)
	}
}

func TestIsArchive(t *testing.T) {
	cases := map[string]bool{
		"/srv/lib/app.jar":         true,
		"/srv/lib/APP.ZIP":         true,
		"file:///srv/lib/app.war":  true,
		"/srv/resources":           false,
		"/srv/resources/":          false,
		"gs://bucket/lib/app.jar/": true,
	}
	for element, want := range cases {
		if got := IsArchive(element); got != want {
			t.Fatalf("IsArchive(%q)=%v want %v", element, got, want)
		}
	}
}

func TestStatic_Resolve(t *testing.T) {
	static := ParseStatic("file:///srv/cql/", "jar:file:/srv/app.jar!/cql/")
	roots, err := static.Resolve(context.Background(), "anything")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(roots) != 2 || roots[0].Kind != locator.KindDirectory || roots[1].Kind != locator.KindArchive {
		t.Fatalf("unexpected roots %+v", roots)
	}
	called := ""
	fn := Func(func(ctx context.Context, path string) ([]locator.Root, error) {
		called = path
		return nil, nil
	})
	if _, err := fn.Resolve(context.Background(), "cql"); err != nil || called != "cql" {
		t.Fatalf("Func not invoked: %q %v", called, err)
	}
}
