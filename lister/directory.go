package lister

import (
	"context"
	"fmt"

	"github.com/viant/reslist/locator"
)

// listDirectory emits one locator per immediate child of a directory root.
// A root resolving to a plain file yields that file's own locator.
func (l *Lister) listDirectory(ctx context.Context, root locator.Root) ([]locator.Locator, error) {
	target := root.StorageURL()
	object, err := l.storage.Stat(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("lister: failed to stat %v: %w", root.URL, err)
	}
	if object == nil {
		l.notify(RootMissing, root.URL, "")
		return nil, nil
	}
	if !object.IsDir {
		loc, err := locator.Join(root.URL, "")
		if err != nil {
			return nil, &MalformedLocatorError{Base: root.URL, Err: err}
		}
		return []locator.Locator{loc}, nil
	}
	children, err := l.storage.List(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("lister: failed to list %v: %w", root.URL, err)
	}
	base := locator.NormalizePath(root.URL)
	result := make([]locator.Locator, 0, len(children))
	for _, child := range children {
		loc, err := locator.Join(base, child.Name)
		if err != nil {
			return nil, &MalformedLocatorError{Base: base, Name: child.Name, Err: err}
		}
		result = append(result, loc)
	}
	return result, nil
}
