// Package extract renders selected PDF pages to image files.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/spherical/pdf-to-image/internal/domain"
	"github.com/spherical/pdf-to-image/internal/pdf"
	"github.com/spherical/pdf-to-image/internal/ui"
)

// Request describes one extraction batch. Pages holds 0-based indices,
// ascending and deduplicated. OutputDir is where the image files are
// written; empty means the document's own directory.
type Request struct {
	Path       string
	Pages      []int
	Resolution domain.Resolution
	Format     domain.OutputFormat
	OutputDir  string
}

// Driver runs extraction batches against a rendering engine.
type Driver struct {
	engine   pdf.Engine
	out      io.Writer
	log      zerolog.Logger
	progress bool
}

// NewDriver creates a driver reporting per-page progress to out.
func NewDriver(engine pdf.Engine, out io.Writer, log zerolog.Logger, progress bool) *Driver {
	return &Driver{
		engine:   engine,
		out:      out,
		log:      log,
		progress: progress,
	}
}

// Extract renders every requested page, best effort: a failing page is
// recorded and reported but never aborts the rest of the batch. Only a
// failure to open the document itself is fatal, in which case no pages
// are processed. The document is reopened once for the whole batch and
// closed on every exit path.
func (d *Driver) Extract(req Request) domain.ExtractionResult {
	var result domain.ExtractionResult

	doc, err := d.engine.Open(req.Path)
	if err != nil {
		msg := domain.ExtractionError(fmt.Sprintf("fatal error: could not open %s", req.Path), err).Error()
		ui.Error(d.out, "%s", msg)
		result.Errors = append(result.Errors, msg)
		return result
	}
	defer doc.Close()

	outputDir := req.OutputDir
	if outputDir == "" {
		outputDir = filepath.Dir(req.Path)
	}
	basename := Basename(req.Path)
	total := len(req.Pages)

	// Bar animation goes to stderr; status lines stay on the primary writer.
	var bar *ui.ProgressBar
	if d.progress {
		bar = ui.NewProgressBar(os.Stderr, int64(total), "Rendering")
	}

	for i, pageIdx := range req.Pages {
		pageNum := pageIdx + 1
		ui.Message(d.out, "Processing page %d (%d of %d)...", pageNum, i+1, total)

		name := OutputFilename(basename, pageNum, req.Format)
		if err := d.renderPage(doc, pageIdx, req.Resolution, req.Format, filepath.Join(outputDir, name)); err != nil {
			msg := fmt.Sprintf("Page %d: %v", pageNum, err)
			result.Errors = append(result.Errors, msg)
			ui.Error(d.out, "%s", msg)
			d.log.Debug().Int("page", pageNum).Err(err).Msg("page failed")
		} else {
			result.Succeeded++
			ui.Success(d.out, "Saved as %s", name)
			d.log.Debug().Int("page", pageNum).Str("file", name).Msg("page saved")
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return result
}

// renderPage rasterizes one page and writes it to path in the requested
// encoding. A partially written file is removed on encode failure.
// Render and encode failures are conversion errors, file failures are
// I/O errors; either way the engine's cause text is preserved verbatim.
func (d *Driver) renderPage(doc pdf.Document, pageIdx int, res domain.Resolution, format domain.OutputFormat, path string) error {
	img, err := doc.ImageDPI(pageIdx, float64(res))
	if err != nil {
		return domain.ConversionError("render failed", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return domain.IOError("could not create output file", err)
	}

	if err := format.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return domain.ConversionError("encode failed", err)
	}
	if err := f.Close(); err != nil {
		return domain.IOError("could not write output file", err)
	}
	return nil
}
