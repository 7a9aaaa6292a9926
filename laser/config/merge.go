package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// MergeLevels appends levels from a JSON file to the inline levels. Inline levels take
// precedence when both define the same ID. The result is ordered by ID.
func (l *LevelList) MergeLevels() error {
	if l.FromFile == "" {
		return nil
	}

	// Read and parse the levels file
	data, err := os.ReadFile(l.FromFile)
	if err != nil {
		return fmt.Errorf("reading levels file: %w", err)
	}

	var fileLevels []Level
	if err := json.Unmarshal(data, &fileLevels); err != nil {
		return fmt.Errorf("parsing levels file: %w", err)
	}

	existing := make(map[int]bool, len(l.Inline))
	for _, level := range l.Inline {
		existing[level.ID] = true
	}

	// Merge levels, with inline taking precedence
	for _, level := range fileLevels {
		if !existing[level.ID] {
			l.Inline = append(l.Inline, level)
			existing[level.ID] = true
		}
	}

	sort.SliceStable(l.Inline, func(i, j int) bool {
		return l.Inline[i].ID < l.Inline[j].ID
	})
	return nil
}

// LoadAndMerge loads all external files and merges their contents
func (c *Catalog) LoadAndMerge() error {
	if err := c.Levels.MergeLevels(); err != nil {
		return fmt.Errorf("merging levels: %w", err)
	}
	return nil
}
