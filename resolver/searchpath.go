package resolver

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/reslist/lister"
	"github.com/viant/reslist/locator"
)

var archiveExtensions = map[string]bool{
	".jar": true,
	".zip": true,
	".war": true,
}

// SearchPath resolves logical paths against an ordered list of directories
// and zip archives, the way a class path is searched.
type SearchPath struct {
	elements []string
	storage  lister.Storage
}

// NewSearchPath creates a search path; elements are directories or archives
// given as absolute paths or URLs. A nil storage defaults to afs.
func NewSearchPath(storage lister.Storage, elements ...string) *SearchPath {
	if storage == nil {
		storage = lister.NewAFS()
	}
	var normalized []string
	for _, element := range elements {
		element = strings.TrimSpace(element)
		if element == "" {
			continue
		}
		if p, ok := locator.LocalPath(element); ok && locator.Scheme(element) == "" {
			element = locator.FileURL(p)
		}
		normalized = append(normalized, element)
	}
	return &SearchPath{elements: normalized, storage: storage}
}

// Elements returns the normalized search path elements.
func (s *SearchPath) Elements() []string {
	return s.elements
}

// Resolve returns, in search path order, a directory root for every directory
// element containing path and an archive root for every archive holding at
// least one entry under path.
func (s *SearchPath) Resolve(ctx context.Context, logicalPath string) ([]locator.Root, error) {
	logicalPath = locator.NormalizePath(strings.TrimPrefix(logicalPath, locator.Separator))
	var roots []locator.Root
	for _, element := range s.elements {
		if IsArchive(element) {
			ok, err := s.archiveContains(ctx, element, logicalPath)
			if err != nil {
				return nil, err
			}
			if ok {
				roots = append(roots, locator.NewArchiveRoot(element, logicalPath))
			}
			continue
		}
		candidate := locator.NewDirectoryRoot(locator.NormalizePath(element) + logicalPath)
		object, err := s.storage.Stat(ctx, candidate.StorageURL())
		if err != nil {
			return nil, fmt.Errorf("resolver: failed to stat %v: %w", candidate.URL, err)
		}
		if object != nil {
			roots = append(roots, candidate)
		}
	}
	return roots, nil
}

func (s *SearchPath) archiveContains(ctx context.Context, archive, prefix string) (bool, error) {
	reader, closer, err := lister.OpenArchive(ctx, s.storage, archive)
	if err != nil {
		return false, err
	}
	defer closer.Close()
	for _, entry := range reader.File {
		if strings.HasPrefix(entry.Name, prefix) {
			return true, nil
		}
	}
	return false, nil
}

// IsArchive reports whether a search path element names a zip container.
func IsArchive(element string) bool {
	return archiveExtensions[strings.ToLower(path.Ext(strings.TrimSuffix(element, locator.Separator)))]
}
