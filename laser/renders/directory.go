package renders

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	RendersDir    = "renders"
	LatestSymlink = "latest"
)

type Dir struct {
	Path      string // Absolute path to the render directory
	ID        string
	Timestamp time.Time
}

// Create makes a new uniquely named directory under root and points root/latest at it.
// An empty root means RendersDir.
func Create(root string) (*Dir, error) {
	if root == "" {
		root = RendersDir
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating renders directory: %w", err)
	}

	now := time.Now().UTC()
	id := GenerateID(now)

	absPath, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}
	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating render directory: %w", err)
	}

	latestPath := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Not fatal
		fmt.Printf("Warning: failed to create latest symlink: %v\n", err)
	}

	return &Dir{
		Path:      absPath,
		ID:        id,
		Timestamp: now,
	}, nil
}

// GetFilePath returns the absolute path for a file in the render directory
func (d *Dir) GetFilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// WriteFile writes content to filename inside the render directory
func (d *Dir) WriteFile(filename string, content []byte) error {
	if err := os.WriteFile(d.GetFilePath(filename), content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return nil
}

// CopyFile copies srcPath into the render directory, keeping its base name
func (d *Dir) CopyFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}
	return d.WriteFile(filepath.Base(srcPath), content)
}
