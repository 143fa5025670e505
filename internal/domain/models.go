package domain

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
)

// Resolution is the target rasterization density in dots per inch,
// applied against the 72-unit reference coordinate space of a PDF page.
type Resolution int

// Supported resolutions
const (
	Resolution300 Resolution = 300
	Resolution600 Resolution = 600

	DefaultResolution = Resolution300
)

// SupportedResolutions lists the accepted DPI values in prompt order.
var SupportedResolutions = []Resolution{Resolution300, Resolution600}

// ParseResolution maps raw prompt input to a Resolution. Empty input
// selects the default; anything other than an exact supported value is
// rejected.
func ParseResolution(raw string) (Resolution, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return DefaultResolution, nil
	}
	for _, r := range SupportedResolutions {
		if trimmed == fmt.Sprintf("%d", int(r)) {
			return r, nil
		}
	}
	return 0, ValidationError(fmt.Sprintf("invalid DPI %q: enter 300 or 600, or press Enter for the default", trimmed), nil)
}

// OutputFormat identifies the image encoding for extracted pages.
type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatJPEG OutputFormat = "jpeg"

	DefaultFormat = FormatPNG

	// JPEG output quality on the encoder's 1-100 scale.
	jpegQuality = 95
)

// ParseFormat maps raw prompt input to an OutputFormat. Empty input
// selects the default; matching is case-insensitive.
func ParseFormat(raw string) (OutputFormat, error) {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	switch trimmed {
	case "":
		return DefaultFormat, nil
	case string(FormatPNG):
		return FormatPNG, nil
	case string(FormatJPEG):
		return FormatJPEG, nil
	}
	return "", ValidationError(fmt.Sprintf("invalid format %q: enter png or jpeg, or press Enter for the default", trimmed), nil)
}

// Ext returns the filename extension for the format, without the dot.
func (f OutputFormat) Ext() string {
	return string(f)
}

// Encode writes img to w in the receiver's encoding. PNG uses the
// encoder's lossless defaults; JPEG encodes at quality 95.
func (f OutputFormat) Encode(w io.Writer, img image.Image) error {
	switch f {
	case FormatJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	default:
		return png.Encode(w, img)
	}
}

// ExtractionResult summarizes a best-effort batch extraction.
type ExtractionResult struct {
	Succeeded int
	Errors    []string
}

// Failed reports whether any page in the batch failed.
func (r ExtractionResult) Failed() bool {
	return len(r.Errors) > 0
}
