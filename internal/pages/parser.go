// Package pages parses user-facing page selections into page indices.
package pages

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spherical/pdf-to-image/internal/domain"
)

// Parse turns a page-selection expression into an ascending, deduplicated
// list of 0-based page indices. The expression is a comma-separated list
// of tokens, each either a single 1-based page number or an inclusive
// range "A-B". The whole-input token "all" selects every page. A single
// malformed or out-of-bounds token rejects the entire input.
func Parse(input string, maxPages int) ([]int, error) {
	trimmed := strings.ToLower(strings.TrimSpace(input))

	if trimmed == "all" {
		all := make([]int, maxPages)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	selected := make(map[int]struct{})

	for _, token := range strings.Split(trimmed, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if strings.Contains(token, "-") {
			bounds := strings.Split(token, "-")
			if len(bounds) != 2 {
				return nil, domain.ValidationError(fmt.Sprintf("invalid range %q", token), nil)
			}
			start, err := parsePageNumber(bounds[0], maxPages)
			if err != nil {
				return nil, err
			}
			end, err := parsePageNumber(bounds[1], maxPages)
			if err != nil {
				return nil, err
			}
			if start > end {
				return nil, domain.ValidationError(fmt.Sprintf("invalid range %q: start page is after end page", token), nil)
			}
			for p := start; p <= end; p++ {
				selected[p-1] = struct{}{}
			}
			continue
		}

		page, err := parsePageNumber(token, maxPages)
		if err != nil {
			return nil, err
		}
		selected[page-1] = struct{}{}
	}

	if len(selected) == 0 {
		return nil, domain.ValidationError("no pages selected", nil)
	}

	result := make([]int, 0, len(selected))
	for idx := range selected {
		result = append(result, idx)
	}
	sort.Ints(result)
	return result, nil
}

// parsePageNumber validates a single 1-based page number token.
func parsePageNumber(token string, maxPages int) (int, error) {
	token = strings.TrimSpace(token)
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, domain.ValidationError(fmt.Sprintf("invalid page number %q", token), nil)
	}
	if n < 1 || n > maxPages {
		return 0, domain.ValidationError(fmt.Sprintf("page %d is out of range (1-%d)", n, maxPages), nil)
	}
	return n, nil
}
