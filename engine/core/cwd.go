package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// PathCWD anchors relative file references to an absolute directory.
type PathCWD struct {
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// CWDFromPath normalizes path into an absolute directory. An empty path uses
// the process working directory; a file path resolves to its parent.
func CWDFromPath(path string) (*PathCWD, error) {
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return &PathCWD{Path: cwd}, nil
	}
	absPath := path
	if !filepath.IsAbs(path) {
		var err error
		absPath, err = filepath.Abs(path)
		if err != nil {
			return nil, err
		}
	}
	fileInfo, err := os.Stat(absPath)
	if err == nil && !fileInfo.IsDir() {
		absPath = filepath.Dir(absPath)
	}
	return &PathCWD{Path: absPath}, nil
}

func (c *PathCWD) PathStr() string {
	if c == nil {
		return ""
	}
	return c.Path
}

// JoinAndCheck resolves path against the working directory and verifies the
// resulting file exists.
func (c *PathCWD) JoinAndCheck(path string) (string, error) {
	if c == nil {
		return "", errors.New("CWD is nil")
	}
	if c.Path == "" {
		return "", errors.New("CWD is not set")
	}
	filename := filepath.Join(c.Path, path)
	filename, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	if _, err := os.Stat(filename); err != nil {
		return "", fmt.Errorf("file not found or inaccessible: %w", err)
	}
	return filename, nil
}
