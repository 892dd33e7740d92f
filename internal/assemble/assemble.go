// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assemble owns the combine pipeline: scan the input directory,
// rasterize images, and merge everything into one output PDF in sorted
// filename order.
package assemble

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/MoAlkhateeb/image-pdf-combiner/internal/raster"
	"github.com/MoAlkhateeb/image-pdf-combiner/internal/scan"
	"github.com/MoAlkhateeb/image-pdf-combiner/pkg/types"
)

// ResolveSavePath returns the final output path. When savePath names an
// existing directory, the default output filename is synthesized inside it
// from the input directory's base name.
func ResolveSavePath(directory, savePath string) string {
	if info, err := os.Stat(savePath); err == nil && info.IsDir() {
		name := fmt.Sprintf(types.DefaultOutputTemplate, filepath.Base(directory))
		return filepath.Join(savePath, name)
	}
	return savePath
}

// Combine merges every image and PDF directly inside directory into a single
// PDF at savePath, in lexicographic path order, and returns the resolved
// save path. Images are rasterized at cfg.DPI (DefaultDPI when zero); source
// PDFs contribute all their pages in internal order. Progress lines go to w.
//
// All sources are collected in memory before the output file is touched, so
// a scan or decode failure leaves any pre-existing file at savePath intact.
// A failure during the final write may leave a truncated file behind.
func Combine(directory, savePath string, cfg types.CombineConfig, w io.Writer) (string, error) {
	directory = filepath.Clean(directory)
	savePath = ResolveSavePath(directory, filepath.Clean(savePath))

	dpi := cfg.DPI
	if dpi == 0 {
		dpi = types.DefaultDPI
	}

	entries, err := scan.List(directory)
	if err != nil {
		return "", err
	}

	conf := relaxedConfiguration()
	sources := make([]io.ReadSeeker, 0, len(entries))
	for _, entry := range entries {
		switch entry.Kind {
		case types.KindPDF:
			// Read fully so the handle is closed before the next
			// iteration; large directories must not pile up open
			// descriptors until the merge.
			data, err := os.ReadFile(entry.Path)
			if err != nil {
				return "", fmt.Errorf("%w: reading %s: %w", types.ErrFilesystem, entry.Path, err)
			}
			// A malformed source PDF must abort the run here,
			// before the output file is touched.
			if err := api.Validate(bytes.NewReader(data), conf); err != nil {
				return "", fmt.Errorf("%w: parsing %s: %w", types.ErrDecode, entry.Path, err)
			}
			sources = append(sources, bytes.NewReader(data))
		case types.KindImage:
			page, err := raster.Rasterize(entry.Path, dpi)
			if err != nil {
				return "", err
			}
			sources = append(sources, bytes.NewReader(page))
		}
		fmt.Fprintf(w, "queued: %s\n", filepath.Base(entry.Path))
	}

	if err := writeDocument(savePath, sources, conf); err != nil {
		return "", err
	}
	return savePath, nil
}

// relaxedConfiguration returns the pdfcpu configuration used for parsing and
// merging source documents.
func relaxedConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// writeDocument serializes the collected sources to path, truncating any
// existing file. Sources have already been parsed; failures past this point
// are write-class. No sources yields a valid zero-page document.
func writeDocument(path string, sources []io.ReadSeeker, conf *model.Configuration) error {
	if len(sources) == 0 {
		return writeEmptyDocument(path)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %w", types.ErrWrite, path, err)
	}
	defer out.Close()

	// A single source is already a complete document; copy it through
	// rather than round-tripping it through the merge.
	if len(sources) == 1 {
		if _, err := io.Copy(out, sources[0]); err != nil {
			return fmt.Errorf("%w: writing %s: %w", types.ErrWrite, path, err)
		}
		return nil
	}

	if err := api.MergeRaw(sources, out, false, conf); err != nil {
		return fmt.Errorf("%w: merging into %s: %w", types.ErrWrite, path, err)
	}
	return nil
}

// writeEmptyDocument emits a minimal PDF whose page tree holds zero pages:
// a catalog, an empty Pages node, and a hand-built xref table.
func writeEmptyDocument(path string) error {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 0, 2)
	offsets = append(offsets, buf.Len())
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	offsets = append(offsets, buf.Len())
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [] /Count 0 >>\nendobj\n")

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xref)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: writing %s: %w", types.ErrWrite, path, err)
	}
	return nil
}
