package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spherical/pdf-to-image/internal/observability"
	"github.com/spherical/pdf-to-image/internal/pdf"
	"github.com/spherical/pdf-to-image/internal/session"
	"github.com/spherical/pdf-to-image/internal/ui"
)

var (
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "pdf-to-image",
	Short: "Interactive PDF to high-resolution image converter",
	Long: `pdf-to-image extracts selected pages of a PDF document as standalone
high-resolution PNG or JPEG images (300 or 600 DPI). The run is fully
interactive: it prompts for the document, resolution, format and page
selection, and writes the images next to the source document.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run() error {
	ui.Init(noColor)

	level := "warn"
	if verbose {
		level = "debug"
	}
	log := observability.NewLogger(observability.LogConfig{Level: level})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	sess := session.New(pdf.NewFitzEngine(), session.WithLogger(log))

	// The session must end with a message and an acknowledgment on every
	// path, including interrupts and escaped panics, never a raw crash.
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("unexpected error: %v", r)
			}
		}()
		done <- sess.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			ui.Error(os.Stdout, "Unexpected error: %v", err)
			waitForEnter()
		}
		return nil
	case <-sigCh:
		cancel()
		fmt.Fprintln(os.Stdout)
		fmt.Fprintln(os.Stdout)
		ui.Message(os.Stdout, "Operation cancelled by user.")
		waitForEnter()
		return nil
	}
}

func waitForEnter() {
	fmt.Fprint(os.Stdout, "Press Enter to exit...")
	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)
	fmt.Fprintln(os.Stdout)
}
