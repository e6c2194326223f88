package export

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// FrontMatter is the metadata block at the top of a note.
type FrontMatter struct {
	Tags  []string `yaml:"tags"  json:"tags"`
	Books []string `yaml:"book"  json:"books"`
	Dates []string `yaml:"-"     json:"dates"`
	Pages string   `yaml:"pages" json:"pages,omitempty"`

	RawDates string `yaml:"dates" json:"-"`
}

// ParseFrontMatter reads the front matter of a rendered note.
// Returns ok=false if the note has none.
func ParseFrontMatter(markdown string) (fm FrontMatter, ok bool, err error) {
	block, found := splitFrontmatter(markdown)
	if !found {
		return FrontMatter{}, false, nil
	}

	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return FrontMatter{}, true, fmt.Errorf("invalid front matter: %w", err)
	}
	for _, d := range strings.Split(fm.RawDates, ",") {
		if d = strings.TrimSpace(d); d != "" {
			fm.Dates = append(fm.Dates, d)
		}
	}
	return fm, true, nil
}

// splitFrontmatter returns the YAML between the opening and closing ---.
func splitFrontmatter(markdown string) (string, bool) {
	rest, ok := strings.CutPrefix(markdown, "---\n")
	if !ok {
		return "", false
	}
	if strings.HasPrefix(rest, "---") {
		return "", true
	}
	block, _, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", false
	}
	return block, true
}
