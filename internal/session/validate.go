package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spherical/pdf-to-image/internal/domain"
)

// ParseConfirm interprets an overwrite-confirmation answer. Only "y" and
// "n" (case-insensitive) are accepted; everything else re-prompts.
func ParseConfirm(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	}
	return false, domain.ValidationError("please enter 'y' or 'n'", nil)
}

// FormatSelection renders an accepted page selection for echoing back to
// the user: a full 1-based list for small selections, a compact summary
// for large ones.
func FormatSelection(indices []int) string {
	if len(indices) == 0 {
		return "none"
	}
	if len(indices) <= 10 {
		parts := make([]string, len(indices))
		for i, idx := range indices {
			parts[i] = strconv.Itoa(idx + 1)
		}
		return strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%d pages: %d-%d and others", len(indices), indices[0]+1, indices[len(indices)-1]+1)
}
