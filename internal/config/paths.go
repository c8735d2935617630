package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config path constants used by the CLI and loaders.
const (
	ConfigDirName  = ".quizterm"
	ConfigFileName = "config.yml"
)

// ErrNoConfig reports that no .quizterm/config.yml exists between the start
// directory and the filesystem root. Callers fall back to Default on it.
var ErrNoConfig = errors.New("no quizterm config found")

// ConfigDir returns the .quizterm directory of a quiz project.
func ConfigDir(root string) string {
	return filepath.Join(root, ConfigDirName)
}

// ConfigPath returns the config file of a quiz project.
func ConfigPath(root string) string {
	return filepath.Join(ConfigDir(root), ConfigFileName)
}

// ProjectRoot returns the directory relative config paths (log file,
// questions file) are anchored at: the parent of .quizterm, or the config
// file's own directory for configs kept elsewhere.
func ProjectRoot(configPath string) string {
	dir := filepath.Dir(configPath)
	if filepath.Base(dir) == ConfigDirName {
		return filepath.Dir(dir)
	}
	return dir
}

// FindConfigPath walks up from startDir (the working directory when empty)
// to the nearest .quizterm/config.yml. It returns an error wrapping
// ErrNoConfig when there is none, and a plain error for a broken layout
// such as a .quizterm directory without a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	start := dir

	for {
		path, err := configIn(dir)
		if err != nil || path != "" {
			return path, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or its parents", ErrNoConfig, start)
		}
		dir = parent
	}
}

// configIn checks one directory; it returns "" and no error when the
// directory has no .quizterm entry at all.
func configIn(dir string) (string, error) {
	configDir := ConfigDir(dir)
	dirInfo, err := os.Stat(configDir)
	switch {
	case os.IsNotExist(err):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("stat %q: %w", configDir, err)
	case !dirInfo.IsDir():
		return "", fmt.Errorf("%q is not a directory", configDir)
	}

	path := filepath.Join(configDir, ConfigFileName)
	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("found %q but %s is missing (run \"quizterm init\")", configDir, ConfigFileName)
	case err != nil:
		return "", fmt.Errorf("stat %q: %w", path, err)
	case info.IsDir():
		return "", fmt.Errorf("config path %q is a directory", path)
	}
	return path, nil
}
