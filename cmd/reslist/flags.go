package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viant/reslist"
	"github.com/viant/reslist/lister"
	"github.com/viant/reslist/resolver"
)

type globalFlags struct {
	configPath      string
	searchPath      []string
	exclude         []string
	excludeMetadata bool
	direct          bool
	sourcesMarker   string
	verbose         bool
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config yaml with searchPath and listing policies")
	pf.StringSliceVar(&f.searchPath, "search-path", nil, "comma-separated directories or jar/zip archives, searched in order")
	pf.StringSliceVar(&f.exclude, "exclude", nil, "comma-separated archive entry exclusion patterns")
	pf.BoolVar(&f.excludeMetadata, "exclude-metadata", false, "exclude archive metadata entries (META-INF/, .DS_Store, ...)")
	pf.BoolVar(&f.direct, "direct", false, "drop archive entries nested below the listed path")
	pf.StringVar(&f.sourcesMarker, "sources-marker", lister.DefaultSourcesMarker, "marker identifying sources archives (empty disables)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log listing decisions")
}

// config merges the optional config file with command line flags; flags win.
func (f *globalFlags) config(cmd *cobra.Command) (*resolver.Config, error) {
	cfg := &resolver.Config{}
	if f.configPath != "" {
		loaded, err := resolver.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if len(f.searchPath) > 0 {
		cfg.SearchPath = f.searchPath
	}
	if len(f.exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, f.exclude...)
	}
	if f.excludeMetadata {
		cfg.ExcludeMetadata = true
	}
	if f.direct {
		cfg.DirectChildrenOnly = true
	}
	if cmd.Flags().Changed("sources-marker") {
		marker := f.sourcesMarker
		cfg.SourcesMarker = &marker
	}
	if len(cfg.SearchPath) == 0 {
		return nil, fmt.Errorf("search path is required (--search-path or --config)")
	}
	return cfg, nil
}

func (f *globalFlags) service(cmd *cobra.Command) (*reslist.Service, error) {
	cfg, err := f.config(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd.ErrOrStderr(), f.verbose)
	return reslist.NewServiceFromConfig(cfg, lister.WithObserver(observer(logger))), nil
}
