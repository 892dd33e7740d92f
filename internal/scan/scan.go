// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scan enumerates the combinable files in an input directory.
// Only immediate entries are considered; subdirectories and files outside
// the extension allow-list are skipped silently.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MoAlkhateeb/image-pdf-combiner/pkg/types"
)

// List returns the image and PDF files directly inside dir, sorted ascending
// by full path. The sort order is the page-order contract for the whole
// pipeline: callers relying on numeric ordering must zero-pad filenames
// themselves. A directory with no matching files yields an empty list, not
// an error.
func List(dir string) ([]types.Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: reading input directory %s: %w", types.ErrFilesystem, dir, err)
	}

	var files []types.Entry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		kind, ok := types.KindForPath(entry.Name())
		if !ok {
			continue
		}
		files = append(files, types.Entry{
			Path: filepath.Join(dir, entry.Name()),
			Kind: kind,
		})
	}

	// ReadDir already sorts by filename; sorting on the joined path keeps
	// the contract independent of that behavior.
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}
