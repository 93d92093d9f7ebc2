package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/ihp-exam/internal/catalog"
)

// FallbackName replaces a candidate name with no usable characters.
const FallbackName = "kandidat"

var (
	unsafeRun = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenRun = regexp.MustCompile(`-+`)
)

// SafeName derives a file-system safe token from a candidate name.
func SafeName(candidate string) string {
	s := strings.ToLower(candidate)
	s = unsafeRun.ReplaceAllString(s, "-")
	s = hyphenRun.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return FallbackName
	}
	return s
}

// FileName composes the exported document name for tab.
func FileName(tab catalog.Tab, safe string) string {
	return fmt.Sprintf("%s-%s-%s.pdf", catalog.FilePrefix, tab, safe)
}
