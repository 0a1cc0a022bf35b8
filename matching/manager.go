package matching

import (
	"path"
	"strings"

	"github.com/viant/reslist/matching/option"
)

// Manager decides whether an archive entry name is excluded from a listing
type Manager struct {
	options *option.Options
}

// New creates a new exclusion manager with the given options
func New(opts ...option.Option) *Manager {
	return &Manager{options: option.NewOptions(opts...)}
}

// Empty reports whether no exclusion rule is configured
func (m *Manager) Empty() bool {
	return m == nil || len(m.options.Exclusions) == 0
}

// IsExcluded checks if a slash-separated entry name matches any exclusion pattern
func (m *Manager) IsExcluded(name string) bool {
	if m.Empty() {
		return false
	}
	name = strings.TrimPrefix(name, "/")
	for _, pattern := range m.options.Exclusions {
		pattern = strings.TrimSpace(pattern)
		// Skip comments or empty lines
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		if isExcluded(name, pattern) {
			return true
		}
	}
	return false
}

func isExcluded(name string, pattern string) bool {
	// Direct substring match (common case for directories like META-INF/)
	if strings.Contains(name, pattern) {
		return true
	}
	cleanPattern := strings.TrimPrefix(pattern, "/")
	if matched, _ := path.Match(cleanPattern, name); matched {
		return true
	}
	if matched, _ := path.Match("*/"+cleanPattern, name); matched {
		return true
	}
	baseName := path.Base(name)
	if matched, _ := path.Match(cleanPattern, baseName); matched {
		return true
	}
	return pattern == baseName || strings.HasSuffix(pattern, "/"+baseName)
}
