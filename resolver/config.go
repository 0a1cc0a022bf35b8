package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/viant/reslist/lister"
	"github.com/viant/reslist/locator"
	"github.com/viant/reslist/matching/option"
)

// Config defines a search path and listing policies.
type Config struct {
	SearchPath         PathList `yaml:"searchPath"`
	SourcesMarker      *string  `yaml:"sourcesMarker"`
	Exclude            []string `yaml:"exclude"`
	ExcludeMetadata    bool     `yaml:"excludeMetadata"`
	DirectChildrenOnly bool     `yaml:"directChildrenOnly"`
}

const fileUserPrefix = "file://~"

// LoadConfig reads a YAML config, expanding ~ in its path and search path elements.
func LoadConfig(path string) (*Config, error) {
	path, err := expandUserPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %v: %w", path, err)
	}
	for i, element := range cfg.SearchPath {
		expanded, err := expandUserPath(element)
		if err != nil {
			return nil, err
		}
		cfg.SearchPath[i] = expanded
	}
	return &cfg, nil
}

// PathList is a list of search path elements; in YAML it is either a
// sequence or a single string delimited by os.PathListSeparator.
type PathList []string

func (p *PathList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*p = filepath.SplitList(value.Value)
		return nil
	}
	var elements []string
	if err := value.Decode(&elements); err != nil {
		return err
	}
	*p = elements
	return nil
}

// Options converts listing policies to lister options.
func (c *Config) Options() []lister.Option {
	var result []lister.Option
	if c.SourcesMarker != nil {
		result = append(result, lister.WithSourcesMarker(*c.SourcesMarker))
	}
	var exclusions []option.Option
	if c.ExcludeMetadata {
		exclusions = append(exclusions, option.WithMetadataPatterns())
	}
	if len(c.Exclude) > 0 {
		exclusions = append(exclusions, option.WithExclusionPatterns(c.Exclude...))
	}
	if len(exclusions) > 0 {
		result = append(result, lister.WithExclusions(exclusions...))
	}
	if c.DirectChildrenOnly {
		result = append(result, lister.WithDirectChildrenOnly())
	}
	return result
}

// Resolver returns a SearchPath over the configured elements.
func (c *Config) Resolver(storage lister.Storage) *SearchPath {
	return NewSearchPath(storage, c.SearchPath...)
}

// expandUserPath expands ~ and ~/x, also inside file://~/x locators.
func expandUserPath(location string) (string, error) {
	trimmed := strings.TrimSpace(location)
	scheme := ""
	if strings.HasPrefix(trimmed, fileUserPrefix) {
		scheme, trimmed = "file://", trimmed[len("file://"):]
	}
	if !strings.HasPrefix(trimmed, "~") {
		return location, nil
	}
	if trimmed != "~" && !strings.HasPrefix(trimmed, "~/") {
		return "", fmt.Errorf("config: unsupported ~user path: %s", location)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	expanded := filepath.Join(home, trimmed[1:])
	if scheme != "" {
		return locator.FileURL(expanded), nil
	}
	return expanded, nil
}
