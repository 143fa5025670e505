package pdf

import (
	"image"

	"github.com/gen2brain/go-fitz"
)

// FitzEngine renders documents with go-fitz (MuPDF).
type FitzEngine struct{}

// NewFitzEngine creates the production rendering engine.
func NewFitzEngine() *FitzEngine {
	return &FitzEngine{}
}

// Open opens the document at path.
func (e *FitzEngine) Open(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, err
	}
	return &fitzDocument{doc: doc}, nil
}

// fitzDocument adapts *fitz.Document to the Document interface: go-fitz
// returns the concrete *image.RGBA from ImageDPI, so a direct return of
// the handle would not satisfy the interface.
type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPage() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) ImageDPI(page int, dpi float64) (image.Image, error) {
	return d.doc.ImageDPI(page, dpi)
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}
