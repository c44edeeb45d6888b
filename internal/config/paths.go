// ABOUTME: Standard filesystem paths for torus-go configuration
// ABOUTME: Resolves ~/.torus-go/ for global and .torus-go/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".torus-go"
	projectDirName = ".torus-go"
)

// GlobalDir returns the user-global config directory (~/.torus-go/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.torus-go/ in the
// project root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// GlobalKeybindingsFile returns the path to the global keybindings file.
func GlobalKeybindingsFile() string {
	return filepath.Join(GlobalDir(), "keybindings.json")
}

// ProjectKeybindingsFile returns the path to the project-local keybindings
// file.
func ProjectKeybindingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "keybindings.json")
}

// ProjectLayoutFile returns the path to the project-local layout file.
func ProjectLayoutFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "layout.yaml")
}
