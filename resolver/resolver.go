// Package resolver discovers the search roots under which a logical path may live.
package resolver

import (
	"context"

	"github.com/viant/reslist/locator"
)

// Resolver produces the ordered search roots for a logical path.
type Resolver interface {
	Resolve(ctx context.Context, path string) ([]locator.Root, error)
}

// Func adapts a function to Resolver.
type Func func(ctx context.Context, path string) ([]locator.Root, error)

func (f Func) Resolve(ctx context.Context, path string) ([]locator.Root, error) {
	return f(ctx, path)
}

// Static returns the same roots for every path.
type Static []locator.Root

func (s Static) Resolve(ctx context.Context, path string) ([]locator.Root, error) {
	return s, nil
}

// ParseStatic classifies root locators into a Static resolver.
func ParseStatic(locations ...string) Static {
	roots := make(Static, 0, len(locations))
	for _, location := range locations {
		roots = append(roots, locator.ParseRoot(location))
	}
	return roots
}
