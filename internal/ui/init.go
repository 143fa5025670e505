// Package ui provides terminal presentation helpers for the interactive
// converter: colored status lines, section banners and progress display.
package ui

import (
	"github.com/fatih/color"
)

// Init applies global UI settings.
func Init(noColor bool) {
	if noColor {
		color.NoColor = true
	}
}
