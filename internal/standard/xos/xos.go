// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package xos provides extensions to the standard os package.
package xos

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ in a path to the user's home directory.
//
// Only "~" and "~/..." are expanded, "~user" paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get home directory: %w", err)
	}
	return filepath.Join(homeDir, path[1:]), nil
}

// Open expands a leading ~ in the path and opens the file for reading.
func Open(path string) (*os.File, error) {
	expandedPath, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return os.Open(expandedPath)
}
