// Package reslist lists the direct children of a logical resource directory
// whether it lives in plain directories or inside zip/jar archives.
package reslist

import (
	"context"
	"fmt"

	"github.com/viant/reslist/lister"
	"github.com/viant/reslist/locator"
	"github.com/viant/reslist/resolver"
)

// Service resolves search roots for a path and lists them
type Service struct {
	resolver resolver.Resolver
	lister   *lister.Lister
}

// List returns locators for everything directly under path
func (s *Service) List(ctx context.Context, path string) ([]locator.Locator, error) {
	roots, err := s.Roots(ctx, path)
	if err != nil {
		return nil, err
	}
	return s.lister.List(ctx, path, roots)
}

// Roots returns the search roots resolved for path
func (s *Service) Roots(ctx context.Context, path string) ([]locator.Root, error) {
	roots, err := s.resolver.Resolve(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve roots for %v: %w", path, err)
	}
	return roots, nil
}

// NewService creates a service; a nil lister defaults to lister.New()
func NewService(r resolver.Resolver, l *lister.Lister) *Service {
	if l == nil {
		l = lister.New()
	}
	return &Service{
		resolver: r,
		lister:   l,
	}
}

// NewServiceFromConfig creates a service over the configured search path
func NewServiceFromConfig(cfg *resolver.Config, opts ...lister.Option) *Service {
	storage := lister.NewAFS()
	opts = append(append(cfg.Options(), lister.WithStorage(storage)), opts...)
	return NewService(cfg.Resolver(storage), lister.New(opts...))
}
