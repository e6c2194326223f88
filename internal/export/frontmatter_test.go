package export

import (
	"slices"
	"testing"

	"github.com/gorewood/vocabmd/internal/vocab"
)

func TestParseFrontMatter_RoundTrip(t *testing.T) {
	md := FormatMarkdown(mixedGroup(), MarkdownOptions{IncludeMetadata: true})

	fm, ok, err := ParseFrontMatter(md)
	if err != nil {
		t.Fatalf("ParseFrontMatter() error = %v", err)
	}
	if !ok {
		t.Fatal("ParseFrontMatter() found no front matter")
	}

	if want := []string{"english-learning", "reading"}; !slices.Equal(fm.Tags, want) {
		t.Errorf("Tags = %q, want %q", fm.Tags, want)
	}
	if want := []string{"Alice in Wonderland", "Dune"}; !slices.Equal(fm.Books, want) {
		t.Errorf("Books = %q, want %q", fm.Books, want)
	}
	if want := []string{"2024-01-01", "2024-01-02"}; !slices.Equal(fm.Dates, want) {
		t.Errorf("Dates = %q, want %q", fm.Dates, want)
	}
	if fm.Pages != "" {
		t.Errorf("Pages = %q, want empty", fm.Pages)
	}
}

func TestParseFrontMatter_SingleDate(t *testing.T) {
	group := vocab.Group{Entries: []vocab.Entry{
		{Book: "Dune", Word: "spice", Phrase: "p", Date: "2024-01-02"},
	}}

	fm, ok, err := ParseFrontMatter(FormatMarkdown(group, MarkdownOptions{IncludeMetadata: true}))
	if err != nil || !ok {
		t.Fatalf("ParseFrontMatter() = (%v, %v)", ok, err)
	}
	if want := []string{"2024-01-02"}; !slices.Equal(fm.Dates, want) {
		t.Errorf("Dates = %q, want %q", fm.Dates, want)
	}
}

func TestParseFrontMatter_Absent(t *testing.T) {
	tests := []struct {
		name string
		md   string
	}{
		{"no metadata", FormatMarkdown(mixedGroup(), MarkdownOptions{})},
		{"empty", ""},
		{"unterminated", "---\ntags:\n  - reading\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := ParseFrontMatter(tt.md)
			if err != nil {
				t.Fatalf("ParseFrontMatter() error = %v", err)
			}
			if ok {
				t.Error("ParseFrontMatter() reported front matter")
			}
		})
	}
}

func TestParseFrontMatter_Invalid(t *testing.T) {
	_, ok, err := ParseFrontMatter("---\ntags: [unclosed\n---\n")
	if !ok {
		t.Error("ParseFrontMatter() should report the block as present")
	}
	if err == nil {
		t.Error("ParseFrontMatter() expected error for malformed YAML")
	}
}
