// Package lister lists the direct children of a logical resource path across
// directory and zip archive search roots.
package lister

import (
	"context"
	"strings"

	"github.com/viant/reslist/locator"
	"github.com/viant/reslist/matching"
)

// Lister produces resource locators for the direct children of a logical path.
// A Lister holds no per-call state and is safe for concurrent use.
type Lister struct {
	storage       Storage
	observer      Observer
	matcher       *matching.Manager
	sourcesMarker string
	directOnly    bool
}

// New creates a lister; directory roots are read with afs unless WithStorage is given.
func New(opts ...Option) *Lister {
	l := &Lister{sourcesMarker: DefaultSourcesMarker}
	for _, opt := range opts {
		opt(l)
	}
	if l.storage == nil {
		l.storage = NewAFS()
	}
	return l
}

// List returns the locators of everything directly under path, in root order
// then discovery order. Children present in several roots are returned once
// per root. The call fails as a whole on the first *MalformedLocatorError or
// *ArchiveReadError.
func (l *Lister) List(ctx context.Context, path string, roots []locator.Root) ([]locator.Locator, error) {
	path = locator.NormalizePath(path)
	var result []locator.Locator
	for _, root := range roots {
		l.notify(RootChecking, root.URL, "")
		var found []locator.Locator
		var err error
		switch root.Kind {
		case locator.KindDirectory:
			found, err = l.listDirectory(ctx, root)
		case locator.KindArchive:
			if l.isSources(root) {
				l.notify(RootSkippedSources, root.URL, "")
				continue
			}
			found, err = l.listArchive(ctx, path, root)
		default:
			l.notify(RootSkippedUnknown, root.URL, "")
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, found...)
	}
	return result, nil
}

// isSources reports companion sources archives, which never contribute listings.
func (l *Lister) isSources(root locator.Root) bool {
	return l.sourcesMarker != "" && strings.Contains(root.URL, l.sourcesMarker)
}

func (l *Lister) notify(eventType EventType, root, entry string) {
	if l.observer == nil {
		return
	}
	l.observer(Event{Type: eventType, Root: root, Entry: entry})
}
