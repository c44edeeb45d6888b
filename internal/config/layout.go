// ABOUTME: Startup layout file: YAML declaration of rings and their files
// ABOUTME: Config only; ring state is never written back (no persistence)

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Layout declares the rings to create at startup and the files each one
// opens. Order is preserved: the first ring listed becomes the torus
// current.
type Layout struct {
	Rings []LayoutRing `yaml:"rings"`
}

// LayoutRing is one named ring in a layout file.
type LayoutRing struct {
	Name  string   `yaml:"name"`
	Files []string `yaml:"files"`
}

// LoadLayout parses a YAML layout file. A missing file is not an error; it
// yields a nil Layout.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	for i, r := range l.Rings {
		if r.Name == "" {
			return nil, fmt.Errorf("parsing %s: ring %d has no name", path, i)
		}
	}
	return &l, nil
}
