package domain

import (
	"bytes"
	"image"
	"testing"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input   string
		want    Resolution
		wantErr bool
	}{
		{"", DefaultResolution, false},
		{"300", Resolution300, false},
		{"600", Resolution600, false},
		{" 600 ", Resolution600, false},
		{"150", 0, true},
		{"720", 0, true},
		{"abc", 0, true},
		{"300dpi", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseResolution(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseResolution(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseResolution(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    OutputFormat
		wantErr bool
	}{
		{"", DefaultFormat, false},
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"jpeg", FormatJPEG, false},
		{"JPEG", FormatJPEG, false},
		{" jpeg ", FormatJPEG, false},
		{"jpg", "", true},
		{"bmp", "", true},
		{"tiff", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	var pngBuf bytes.Buffer
	if err := FormatPNG.Encode(&pngBuf, img); err != nil {
		t.Fatalf("PNG encode: %v", err)
	}
	if !bytes.HasPrefix(pngBuf.Bytes(), []byte("\x89PNG")) {
		t.Error("PNG output missing signature")
	}

	var jpegBuf bytes.Buffer
	if err := FormatJPEG.Encode(&jpegBuf, img); err != nil {
		t.Fatalf("JPEG encode: %v", err)
	}
	if !bytes.HasPrefix(jpegBuf.Bytes(), []byte{0xFF, 0xD8}) {
		t.Error("JPEG output missing SOI marker")
	}
}

func TestDomainErrorMessage(t *testing.T) {
	err := ValidationError("bad input", nil)
	if err.Error() != "bad input" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Type != ErrorTypeValidation {
		t.Errorf("Type = %q", err.Type)
	}

	wrapped := ConversionError("render failed", ValidationError("inner", nil))
	if wrapped.Error() != "render failed: inner" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if wrapped.Unwrap() == nil {
		t.Error("Unwrap() = nil")
	}
}
