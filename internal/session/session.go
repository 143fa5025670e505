// Package session runs the interactive conversion flow: a sequence of
// validated prompts followed by a best-effort extraction batch.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/spherical/pdf-to-image/internal/domain"
	"github.com/spherical/pdf-to-image/internal/extract"
	"github.com/spherical/pdf-to-image/internal/observability"
	"github.com/spherical/pdf-to-image/internal/pages"
	"github.com/spherical/pdf-to-image/internal/pdf"
	"github.com/spherical/pdf-to-image/internal/ui"
)

const headerTitle = "PDF to High-Resolution Image Converter"

// Session owns one interactive run. All state is process-lifetime only;
// nothing persists across runs.
type Session struct {
	in        *bufio.Reader
	out       io.Writer
	engine    pdf.Engine
	validator *pdf.Validator
	log       zerolog.Logger
	workDir   string
	progress  bool
}

// Option configures a Session.
type Option func(*Session)

// WithInput replaces the input stream (stdin by default).
func WithInput(r io.Reader) Option {
	return func(s *Session) { s.in = bufio.NewReader(r) }
}

// WithOutput replaces the output stream (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithLogger sets the diagnostic logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithWorkDir sets the directory relative filenames resolve against.
func WithWorkDir(dir string) Option {
	return func(s *Session) { s.workDir = dir }
}

// WithProgress toggles spinner and progress-bar animation.
func WithProgress(enabled bool) Option {
	return func(s *Session) { s.progress = enabled }
}

// New creates a session over the given rendering engine.
func New(engine pdf.Engine, opts ...Option) *Session {
	s := &Session{
		in:        bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		engine:    engine,
		validator: pdf.NewValidator(),
		log:       observability.DefaultLogger(),
		workDir:   ".",
		progress:  true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the full interactive flow and blocks until the user
// acknowledges the final summary. Cancellation and declined overwrites
// are normal returns; only I/O failures on the prompt stream surface as
// errors.
func (s *Session) Run(ctx context.Context) error {
	ui.Banner(s.out, headerTitle)

	path, pageCount, err := s.promptFilename(ctx)
	if err != nil {
		return err
	}

	resolution, err := s.promptResolution(ctx)
	if err != nil {
		return err
	}

	format, err := s.promptFormat(ctx)
	if err != nil {
		return err
	}

	selection, err := s.promptPages(ctx, pageCount)
	if err != nil {
		return err
	}

	proceed, err := s.confirmOverwrite(ctx, path, selection, format)
	if err != nil {
		return err
	}
	if !proceed {
		ui.Message(s.out, "Operation cancelled by user.")
		ui.Newline(s.out)
		s.waitForExit()
		return nil
	}

	ui.Rule(s.out)
	ui.Message(s.out, "Starting extraction...")
	ui.Rule(s.out)
	ui.Newline(s.out)

	driver := extract.NewDriver(s.engine, s.out, s.log, s.progress)
	result := driver.Extract(extract.Request{
		Path:       path,
		Pages:      selection,
		Resolution: resolution,
		Format:     format,
	})

	s.printSummary(result)
	s.waitForExit()
	return nil
}

// promptFilename loops until the user names an openable PDF. The
// document is opened once to learn the page count, then closed again;
// extraction reopens it later.
func (s *Session) promptFilename(ctx context.Context) (string, int, error) {
	if pdfs := pdf.ListPDFs(s.workDir); len(pdfs) > 0 {
		ui.Info(s.out, "PDF files in this directory: %s", strings.Join(pdfs, ", "))
		ui.Newline(s.out)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}

		ui.Message(s.out, "Enter the PDF filename (must be in the same directory):")
		name, err := s.readLine("> ")
		if err != nil {
			return "", 0, err
		}

		path := name
		if path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(s.workDir, path)
		}

		if err := s.validator.ValidatePDFPath(path); err != nil {
			ui.Error(s.out, "%v", err)
			ui.Newline(s.out)
			continue
		}

		pageCount, err := s.openForPageCount(path)
		if err != nil {
			ui.Error(s.out, "Could not open PDF file: %v", err)
			ui.Message(s.out, "Please try again.")
			ui.Newline(s.out)
			continue
		}

		ui.Success(s.out, "PDF loaded successfully (%d pages)", pageCount)
		ui.Newline(s.out)
		s.log.Debug().Str("file", path).Int("pages", pageCount).Msg("document validated")
		return path, pageCount, nil
	}
}

func (s *Session) openForPageCount(path string) (int, error) {
	var spin *ui.Spinner
	if s.progress {
		spin = ui.NewSpinner(os.Stderr, "Opening "+filepath.Base(path))
		spin.Start()
	}

	doc, err := s.engine.Open(path)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return 0, err
	}
	pageCount := doc.NumPage()
	if cerr := doc.Close(); cerr != nil {
		return 0, cerr
	}
	if pageCount == 0 {
		return 0, domain.ValidationError("PDF has no pages", nil)
	}
	return pageCount, nil
}

func (s *Session) promptResolution(ctx context.Context) (domain.Resolution, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		ui.Message(s.out, "Select DPI (resolution):")
		ui.Message(s.out, "  300 - Standard high resolution (default)")
		ui.Message(s.out, "  600 - Ultra high resolution")
		ui.Message(s.out, "Press Enter for default (300 DPI)")
		raw, err := s.readLine("> ")
		if err != nil {
			return 0, err
		}

		resolution, verr := domain.ParseResolution(raw)
		if verr != nil {
			ui.Error(s.out, "%v", verr)
			ui.Newline(s.out)
			continue
		}

		if raw == "" {
			ui.Success(s.out, "Using default: %d DPI", int(resolution))
		} else {
			ui.Success(s.out, "Selected: %d DPI", int(resolution))
		}
		ui.Newline(s.out)
		return resolution, nil
	}
}

func (s *Session) promptFormat(ctx context.Context) (domain.OutputFormat, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		ui.Message(s.out, "Select output format:")
		ui.Message(s.out, "  png  - PNG format (default, lossless)")
		ui.Message(s.out, "  jpeg - JPEG format (compressed, smaller files)")
		ui.Message(s.out, "Press Enter for default (png)")
		raw, err := s.readLine("> ")
		if err != nil {
			return "", err
		}

		format, verr := domain.ParseFormat(raw)
		if verr != nil {
			ui.Error(s.out, "%v", verr)
			ui.Newline(s.out)
			continue
		}

		if raw == "" {
			ui.Success(s.out, "Using default: %s", strings.ToUpper(format.Ext()))
		} else {
			ui.Success(s.out, "Selected: %s", strings.ToUpper(format.Ext()))
		}
		ui.Newline(s.out)
		return format, nil
	}
}

func (s *Session) promptPages(ctx context.Context, pageCount int) ([]int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ui.Message(s.out, "Select pages to extract (1-%d):", pageCount)
		ui.Message(s.out, "  Examples:")
		ui.Message(s.out, "    all        - Extract all pages")
		ui.Message(s.out, "    3          - Extract page 3")
		ui.Message(s.out, "    1,3,5      - Extract pages 1, 3 and 5")
		ui.Message(s.out, "    1-5        - Extract pages 1 through 5")
		ui.Message(s.out, "    1-3,7,9-11 - Ranges and single pages combined")
		raw, err := s.readLine("> ")
		if err != nil {
			return nil, err
		}

		selection, verr := pages.Parse(raw, pageCount)
		if verr != nil {
			ui.Error(s.out, "%v (valid pages: 1-%d)", verr, pageCount)
			ui.Newline(s.out)
			continue
		}

		ui.Success(s.out, "Selected pages: %s", FormatSelection(selection))
		ui.Newline(s.out)
		return selection, nil
	}
}

// confirmOverwrite checks the exact filenames the driver will produce and
// asks before clobbering any that already exist. Returns false when the
// user declines, which cancels the whole session.
func (s *Session) confirmOverwrite(ctx context.Context, path string, selection []int, format domain.OutputFormat) (bool, error) {
	basename := extract.Basename(path)
	outputDir := filepath.Dir(path)

	var existing []string
	for _, idx := range selection {
		name := extract.OutputFilename(basename, idx+1, format)
		if _, err := os.Stat(filepath.Join(outputDir, name)); err == nil {
			existing = append(existing, name)
		}
	}
	if len(existing) == 0 {
		return true, nil
	}

	ui.Warning(s.out, "The following files already exist:")
	fmt.Fprint(s.out, ui.FormatList(existing))
	ui.Newline(s.out)

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		raw, err := s.readLine("Overwrite existing files? (y/n): ")
		if err != nil {
			return false, err
		}

		overwrite, verr := ParseConfirm(raw)
		if verr != nil {
			ui.Error(s.out, "%v", verr)
			ui.Newline(s.out)
			continue
		}
		if !overwrite {
			return false, nil
		}

		ui.Success(s.out, "Will overwrite existing files")
		ui.Newline(s.out)
		return true, nil
	}
}

func (s *Session) printSummary(result domain.ExtractionResult) {
	ui.Newline(s.out)
	ui.Rule(s.out)
	ui.Message(s.out, "Extraction Complete")
	ui.Rule(s.out)
	ui.Message(s.out, "Successfully extracted: %d page(s)", result.Succeeded)

	if result.Failed() {
		ui.Message(s.out, "Errors encountered: %d", len(result.Errors))
		ui.Newline(s.out)
		ui.Message(s.out, "Error details:")
		fmt.Fprint(s.out, ui.FormatList(result.Errors))
	} else {
		ui.Success(s.out, "No errors encountered")
	}
	ui.Rule(s.out)
	ui.Newline(s.out)
}

func (s *Session) waitForExit() {
	fmt.Fprint(s.out, "Press Enter to exit...")
	_, _ = s.in.ReadString('\n')
	ui.Newline(s.out)
}

func (s *Session) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
