package export

import (
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultFilename is used when a document is not named after a single
// book or date.
const DefaultFilename = "vocabulary_builder.md"

// ByDateFolder holds per-date notes when no folder name is given.
const ByDateFolder = "by_date"

// unsafeChars matches everything outside letters, digits, '-', '_' and space.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9\-_ ]`)

// Layout controls how notes are split and where they go.
type Layout struct {
	PerBook    bool   // one note (and folder) per book
	PerDate    bool   // one note per date
	FolderName string // folder for per-date notes when not split per book
}

// Sanitize makes name safe for use as a file or folder name: characters
// outside [A-Za-z0-9-_ ] are removed, then spaces become underscores.
// Returns "unknown" when nothing usable is left.
func Sanitize(name string) string {
	cleaned := strings.ReplaceAll(unsafeChars.ReplaceAllString(name, ""), " ", "_")
	if cleaned == "" {
		return "unknown"
	}
	return cleaned
}

// PlanPath returns the folder and file name of the note for a group with
// the given distinct books and dates (both sorted):
//
//	per book + per date:        <root>/<book>/<date>.md
//	per date, folder name set:  <root>/<folder>/<date>.md
//	per book:                   <root>/<book>/<book>.md
//	per date:                   <root>/by_date/<date>.md
//	neither:                    <root>/vocabulary_builder.md
//
// A group spanning more than one date falls back to vocabulary_builder.md
// in the per-date layouts.
func PlanPath(root string, layout Layout, books, dates []string) (dir, filename string) {
	firstBook := Sanitize(first(books))

	switch {
	case layout.PerBook && layout.PerDate:
		return filepath.Join(root, firstBook), dateFilename(dates)
	case layout.PerDate && layout.FolderName != "":
		return filepath.Join(root, layout.FolderName), dateFilename(dates)
	case layout.PerBook:
		return filepath.Join(root, firstBook), firstBook + ".md"
	case layout.PerDate:
		return filepath.Join(root, ByDateFolder), dateFilename(dates)
	default:
		return root, DefaultFilename
	}
}

func dateFilename(dates []string) string {
	if len(dates) == 1 {
		return Sanitize(dates[0]) + ".md"
	}
	return DefaultFilename
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
