// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for the combiner: scanned input
// entries, the combine configuration, and the error kinds the pipeline
// reports.
package types

import (
	"path/filepath"
	"strings"
)

// Kind classifies a scanned input file by its lowercased extension.
type Kind string

const (
	// KindImage marks a raster image (.png, .jpeg, .jpg) that must be
	// rasterized into a one-page PDF before merging.
	KindImage Kind = "image"

	// KindPDF marks an existing PDF whose pages are appended as-is.
	KindPDF Kind = "pdf"
)

// Entry is one scanned input file. Immutable once produced by the scanner.
type Entry struct {
	// Path is the full filesystem path to the file.
	Path string `json:"path" yaml:"path"`

	// Kind records whether the file is an image or a PDF.
	Kind Kind `json:"kind" yaml:"kind"`
}

const (
	// DefaultDPI is the image conversion resolution used when none is
	// configured.
	DefaultDPI = 300

	// DefaultOutputTemplate names the output file synthesized when the
	// output path is a directory. The verb receives the input directory's
	// base name.
	DefaultOutputTemplate = "%s_combined_output.pdf"
)

// CombineConfig holds settings for one combine run.
type CombineConfig struct {
	// DPI is the resolution for image-to-PDF conversion. Zero means
	// DefaultDPI; other values are passed through uninspected.
	DPI int `json:"dpi" yaml:"dpi"`
}

// KindForPath reports the Kind for path based on its extension, compared
// case-insensitively against the fixed allow-list (.png, .jpeg, .jpg, .pdf).
// ok is false for any other extension.
func KindForPath(path string) (kind Kind, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpeg", ".jpg":
		return KindImage, true
	case ".pdf":
		return KindPDF, true
	}
	return "", false
}
