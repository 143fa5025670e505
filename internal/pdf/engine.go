// Package pdf wraps the document-rendering backend behind a small
// interface and validates candidate input files.
package pdf

import "image"

// Engine opens PDF documents for rendering. It is the seam between the
// interactive session and the rendering backend, so validation and
// extraction logic can run against a fake in tests.
type Engine interface {
	Open(path string) (Document, error)
}

// Document is an open PDF ready to rasterize pages. Page indices are
// 0-based. Callers must Close the document on every exit path.
type Document interface {
	// NumPage returns the number of pages in the document.
	NumPage() int

	// ImageDPI rasterizes one page at the given density, scaled
	// dpi/72 in both axes against the page coordinate space, with no
	// alpha channel.
	ImageDPI(page int, dpi float64) (image.Image, error)

	// Close releases the document handle.
	Close() error
}
