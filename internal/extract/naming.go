package extract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spherical/pdf-to-image/internal/domain"
)

// Basename strips the directory and extension from a document path.
func Basename(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputFilename formats the output name for one extracted page. It is
// the single source of truth for output naming: the pre-flight overwrite
// check and the extraction loop must both go through it so the two can
// never diverge. pageNum is 1-based.
func OutputFilename(basename string, pageNum int, format domain.OutputFormat) string {
	return fmt.Sprintf("%s_page_%d.%s", basename, pageNum, format.Ext())
}
