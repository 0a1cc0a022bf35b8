package lister

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/viant/reslist/locator"
)

// listArchive scans the whole entry table of an archive root and emits the
// non-directory entries starting with the root prefix.
//
// Matching is a plain prefix test, so an entry such as "p/sub/x" is emitted
// as "sub/x" unless the archive marks "p/sub/" as a directory entry or
// WithDirectChildrenOnly is set.
func (l *Lister) listArchive(ctx context.Context, path string, root locator.Root) ([]locator.Locator, error) {
	prefix := path
	if root.Prefix != "" {
		prefix = locator.NormalizePath(root.Prefix)
	}
	reader, closer, err := OpenArchive(ctx, l.storage, root.Archive)
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	var children []string
	marked := map[string]bool{}
	for _, entry := range reader.File {
		name := entry.Name
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		relative := name[len(prefix):]
		if entry.FileInfo().IsDir() {
			l.notify(EntrySkippedDirectory, root.URL, name)
			if relative != "" {
				marked[relative] = true
			}
			continue
		}
		if relative == "" {
			continue
		}
		children = append(children, relative)
	}

	base := locator.NormalizePath(root.URL)
	var result []locator.Locator
	for _, relative := range children {
		if l.isNested(relative, marked) {
			l.notify(EntrySkippedNested, root.URL, prefix+relative)
			continue
		}
		if l.matcher.IsExcluded(relative) {
			l.notify(EntryExcluded, root.URL, prefix+relative)
			continue
		}
		loc, err := locator.Join(base, relative)
		if err != nil {
			return nil, &MalformedLocatorError{Base: base, Name: relative, Err: err}
		}
		result = append(result, loc)
	}
	return result, nil
}

// isNested reports entries living below a directory the archive marks explicitly.
func (l *Lister) isNested(relative string, marked map[string]bool) bool {
	if !strings.Contains(relative, locator.Separator) {
		return false
	}
	if l.directOnly {
		return true
	}
	for i := 0; i < len(relative); i++ {
		if relative[i] == '/' && marked[relative[:i+1]] {
			return true
		}
	}
	return false
}

// OpenArchive opens a zip container. File containers are read in place;
// containers on other storages are downloaded first. The returned closer must
// be closed once the entries are consumed.
func OpenArchive(ctx context.Context, storage Storage, archive string) (*zip.Reader, io.Closer, error) {
	if p, ok := locator.LocalPath(archive); ok {
		rc, err := zip.OpenReader(p)
		if err != nil {
			return nil, nil, &ArchiveReadError{Archive: archive, Err: err}
		}
		return &rc.Reader, rc, nil
	}
	if storage == nil {
		return nil, nil, &ArchiveReadError{Archive: archive, Err: fmt.Errorf("no storage for %v", locator.Scheme(archive))}
	}
	data, err := storage.Download(ctx, archive)
	if err != nil {
		return nil, nil, &ArchiveReadError{Archive: archive, Err: err}
	}
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, nil, &ArchiveReadError{Archive: archive, Err: err}
	}
	return reader, nopCloser{}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
