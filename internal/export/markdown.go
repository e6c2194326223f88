package export

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/vocabmd/internal/vocab"
)

// Tags listed in every note's front matter.
var noteTags = []string{"english-learning", "reading"}

// MarkdownOptions controls rendering.
type MarkdownOptions struct {
	// PerBook suppresses the "# <book>" headings, since each note holds a
	// single book.
	PerBook bool
	// IncludeMetadata adds the YAML front matter block.
	IncludeMetadata bool
}

// FormatMarkdown formats a group as a markdown document.
func FormatMarkdown(group vocab.Group, opts MarkdownOptions) string {
	var builder strings.Builder

	if opts.IncludeMetadata {
		writeFrontmatter(&builder, group.Books(), group.Dates())
	}
	writeEntries(&builder, group.Entries, opts.PerBook)

	return builder.String()
}

// writeFrontmatter writes the YAML frontmatter section. The field layout is
// read by note-taking tools and must not change.
func writeFrontmatter(builder *strings.Builder, books, dates []string) {
	builder.WriteString("---\n")

	builder.WriteString("tags:\n")
	for _, tag := range noteTags {
		fmt.Fprintf(builder, "  - %s\n", tag)
	}

	builder.WriteString("book:\n")
	for _, book := range books {
		fmt.Fprintf(builder, "  - %s\n", quoteYAML(book))
	}

	fmt.Fprintf(builder, "dates: %s\n", strings.Join(dates, ", "))
	builder.WriteString("pages:\n")
	builder.WriteString("---\n")
}

// writeEntries writes a "## word" section with a note callout per entry.
// Unless notes are split per book, a "# book" heading precedes each run of
// entries from the same book.
func writeEntries(builder *strings.Builder, entries []vocab.Entry, perBook bool) {
	currentBook := ""
	for i, entry := range entries {
		if !perBook && (i == 0 || entry.Book != currentBook) {
			fmt.Fprintf(builder, "\n# %s\n", entry.Book)
			currentBook = entry.Book
		}
		fmt.Fprintf(builder, "## %s\n", entry.Word)
		builder.WriteString("> [!note] Context\n")
		fmt.Fprintf(builder, "> %s\n", entry.Phrase)
	}
}

// quoteYAML renders s as a double-quoted YAML scalar.
func quoteYAML(s string) string {
	node := &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: s}
	out, err := yaml.Marshal(node)
	if err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(string(out), "\n")
}
