// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks configuration targets before any loader touches
// them.
//
// A target is a comma-separated list of file paths ("base.json,local.json").
// [SplitPaths] splits and validates the list; [CheckFile] verifies that one
// path names an existing regular file.
package validators

import (
	"errors"
	"io/fs"
	"os"
	"runtime"
	"strings"
)

// MaxPathLength is the longest accepted path.
const MaxPathLength = 260

// SplitPaths splits a comma-separated list of paths, trims each entry and
// drops empty ones. Every remaining path is validated:
//   - it must not contain ".." (no traversal);
//   - it must not exceed MaxPathLength bytes;
//   - it must not contain < > " | ? * (and ':' outside Windows, where it is
//     needed for drive letters).
func SplitPaths(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, &PathError{Path: list, Reason: "path cannot be empty"}
	}

	parts := strings.Split(list, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil, &PathError{Path: list, Reason: "no valid file paths found"}
	}

	for _, p := range paths {
		if err := validatePath(p, runtime.GOOS == "windows"); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

func validatePath(path string, windows bool) error {
	if strings.Contains(path, "..") {
		return &PathError{Path: path, Reason: "path traversal not allowed"}
	}
	if len(path) > MaxPathLength {
		return &PathError{Path: path, Reason: "path too long"}
	}

	invalid := `<>:"|?*`
	if windows {
		invalid = `<>"|?*`
	}
	if strings.ContainsAny(path, invalid) {
		return &PathError{Path: path, Reason: "invalid characters in path"}
	}

	return nil
}

// CheckFile verifies that path exists and is a regular file.
func CheckFile(path string) error {
	return CheckFileFS(osStat, path)
}

// StatFunc returns file info for a path.
type StatFunc func(path string) (fs.FileInfo, error)

func osStat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// CheckFileFS is CheckFile over a custom stat function.
func CheckFileFS(stat StatFunc, path string) error {
	info, err := stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &PathError{Path: path, Reason: "file not found", Err: ErrFileNotFound}
		}
		return &PathError{Path: path, Reason: "cannot access file", Err: err}
	}
	if !info.Mode().IsRegular() {
		return &PathError{Path: path, Reason: "path is not a file"}
	}
	return nil
}
