package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads a Catalog from a YAML file
func LoadFromFile(path string, opts LoadOptions) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var resolver *PathResolver
	if opts.ResolvePaths {
		resolver = NewPathResolver(filepath.Dir(path))
	}
	return Load(data, resolver, opts)
}

// Load parses a Catalog from YAML. Relative paths are resolved against resolver when
// opts.ResolvePaths is set.
func Load(data []byte, resolver *PathResolver, opts LoadOptions) (*Catalog, error) {
	config := &Catalog{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	if opts.ResolvePaths && resolver != nil {
		if err := config.ResolvePaths(resolver); err != nil {
			return nil, fmt.Errorf("resolving paths: %w", err)
		}
	}

	if opts.ValidateImmediately && resolver != nil {
		if errs := config.ValidateFiles(resolver); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors:\n%s", FormatValidationErrors(errs))
		}
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, fmt.Errorf("validation errors:\n%s", FormatValidationErrors(errs))
		}
	}

	return config, nil
}

// SaveToFile saves a Catalog to a YAML file
func SaveToFile(config *Catalog, path string) error {
	// Update metadata before saving
	collector, err := NewMetadataCollector()
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
		collector = &MetadataCollector{timestamp: nowUTC()}
	}
	collector.PopulateMetadata(config)

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog file: %w", err)
	}

	return nil
}

// ResolvePaths resolves all relative paths in the catalog to absolute paths
func (c *Catalog) ResolvePaths(resolver *PathResolver) error {
	if c.Levels.FromFile != "" {
		c.Levels.FromFile = resolver.ResolvePath(c.Levels.FromFile)
	}

	for i := range c.Levels.Inline {
		level := &c.Levels.Inline[i]
		if level.ObstaclesFromFile != "" {
			level.ObstaclesFromFile = resolver.ResolvePath(level.ObstaclesFromFile)
		}
	}

	return nil
}
