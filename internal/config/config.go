// ABOUTME: Settings loading with global + project config deep merge
// ABOUTME: JSON-based configuration; project values override global ones

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the merged configuration.
type Settings struct {
	// DefaultRing is the ring new buffers land in when no ring is named.
	DefaultRing string `json:"default_ring,omitempty"`

	// FetchTimeoutSec bounds /fetch page loads. Zero means the built-in
	// 30-second default.
	FetchTimeoutSec int `json:"fetch_timeout_sec,omitempty"`

	// PlainText disables glamour rendering of markdown buffers.
	PlainText bool `json:"plain_text,omitempty"`
}

// DefaultRingName is used when neither config file names one.
const DefaultRingName = "main"

// Load reads and merges global and project-local settings. Project settings
// override global settings. Missing files yield defaults.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	if merged.DefaultRing == "" {
		merged.DefaultRing = DefaultRingName
	}
	return merged, nil
}

// LoadFile reads Settings from a single explicit file, skipping the
// global/project merge. Unlike Load, a missing file is an error.
func LoadFile(path string) (*Settings, error) {
	s, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if s.DefaultRing == "" {
		s.DefaultRing = DefaultRingName
	}
	return s, nil
}

// loadFile reads Settings from a JSON file. Returns zero Settings when the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge deep-merges project settings onto global settings. Non-zero project
// values win.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	if project.DefaultRing != "" {
		result.DefaultRing = project.DefaultRing
	}
	if project.FetchTimeoutSec != 0 {
		result.FetchTimeoutSec = project.FetchTimeoutSec
	}
	if project.PlainText {
		result.PlainText = true
	}
	return &result
}
