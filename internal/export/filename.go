package export

import (
	"strings"

	"lectern/internal/textutil"
)

const (
	fileExtension   = ".pptx"
	defaultFileStem = "presentation"
)

// FileName derives the download name for a presentation title: every
// whitespace rune becomes an underscore, unsafe characters are stripped, and
// the .pptx extension is appended.
func FileName(title string) string {
	stem := textutil.SanitizeFileName(textutil.UnderscoreSpaces(strings.TrimSpace(title)))
	stem = strings.Trim(stem, ".")
	if stem == "" {
		stem = defaultFileStem
	}
	return stem + fileExtension
}
