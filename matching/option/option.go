package option

import (
	"bufio"
	"io"
	"strings"
)

// Options holds entry exclusion rules
type Options struct {
	// Exclusions contains patterns of entries to exclude
	Exclusions []string
}

// Options returns a slice of Option functions based on the Options fields
func (o *Options) Options() []Option {
	var result []Option
	if len(o.Exclusions) > 0 {
		result = append(result, WithExclusionPatterns(o.Exclusions...))
	}
	return result
}

// NewOptions creates a new Options instance; no entry is excluded by default
func NewOptions(opts ...Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// Option is a function that modifies Options
type Option func(*Options)

// WithExclusionPatterns sets exclusion patterns
func WithExclusionPatterns(patterns ...string) Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, patterns...)
	}
}

// WithIgnoreFile adds patterns from a .gitignore-style reader
func WithIgnoreFile(reader io.Reader) Option {
	return func(o *Options) {
		if patterns := parseIgnoreFile(reader); len(patterns) > 0 {
			o.Exclusions = append(o.Exclusions, patterns...)
		}
	}
}

// WithMetadataPatterns excludes packaging metadata commonly found next to resources
func WithMetadataPatterns() Option {
	return func(o *Options) {
		o.Exclusions = append(o.Exclusions, MetadataPatterns()...)
	}
}

// MetadataPatterns returns packaging and OS metadata entry patterns
func MetadataPatterns() []string {
	return []string{
		"META-INF/",
		"__MACOSX/",
		".DS_Store",
		"._*",
		"Thumbs.db",
	}
}

// parseIgnoreFile reads .gitignore-style patterns from a reader
func parseIgnoreFile(reader io.Reader) []string {
	var patterns []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
