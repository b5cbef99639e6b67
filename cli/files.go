// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CollectFiles expands the configured paths into the list of audio
// files to process, in a stable order.
//
// Paths naming a file directly are taken as-is, without extension
// filtering: the user asked for that exact file. Directories are walked
// recursively and only files matching one of the configured extensions
// (case-insensitive, without the dot) are picked up.
func (a *Args) CollectFiles() ([]string, error) {
	var files []string

	for _, path := range a.Paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: path %q: %w", ErrInvalidArgument, path, err)
		}

		if !info.IsDir() {
			files = append(files, path)
			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				// Unreadable entries are skipped, not fatal
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if a.matchesExtension(p) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %q: %w", path, err)
		}
	}

	if len(files) == 0 {
		return nil, ErrNoAudioFiles
	}

	return files, nil
}

func (a *Args) matchesExtension(path string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return false
	}

	for _, want := range a.FileExtensions {
		if ext == want {
			return true
		}
	}

	return false
}

// Extension returns the lowercase extension of path without the dot,
// used to pick a decoder from the format registry.
func Extension(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
