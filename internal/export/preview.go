package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// previewDirName is the cache folder under the system temp directory.
const previewDirName = "vocab_builder_cache"

// PreviewDir returns the directory previews are written to.
func PreviewDir() string {
	return filepath.Join(os.TempDir(), previewDirName)
}

// Note is one written note as shown in a preview.
type Note struct {
	Path        string       `json:"path"`
	FrontMatter *FrontMatter `json:"front_matter,omitempty"`
	Words       int          `json:"words"`
}

// PreviewResult is the outcome of a preview run.
type PreviewResult struct {
	Result
	Notes []Note `json:"notes"`
	Text  string `json:"text"`
}

// Preview clears PreviewDir(), runs Export into it and reads the notes
// back. Text is every note in path order, each followed by a blank line.
// The caller removes the directory with CleanupPreview when done.
func Preview(ctx context.Context, opts Options) (*PreviewResult, error) {
	if err := CleanupPreview(); err != nil {
		return nil, err
	}

	opts.Root = PreviewDir()
	result, err := Export(ctx, opts)
	if err != nil {
		return nil, err
	}

	preview := &PreviewResult{Result: *result, Notes: make([]Note, 0, len(result.Files))}
	var text strings.Builder
	for _, path := range result.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, newError(KindFilesystem, "read preview note", err)
		}
		content := string(data)
		text.WriteString(content)
		text.WriteString("\n\n")

		note, err := describeNote(path, content)
		if err != nil {
			return nil, err
		}
		preview.Notes = append(preview.Notes, note)
	}
	preview.Text = text.String()

	return preview, nil
}

// describeNote summarises a rendered note.
func describeNote(path, content string) (Note, error) {
	note := Note{Path: path, Words: strings.Count(content, "\n## ")}
	if strings.HasPrefix(content, "## ") {
		note.Words++
	}

	fm, ok, err := ParseFrontMatter(content)
	if err != nil {
		return Note{}, newError(KindFilesystem, "read preview note "+path, err)
	}
	if ok {
		note.FrontMatter = &fm
	}
	return note, nil
}

// CleanupPreview removes PreviewDir() and everything in it.
func CleanupPreview() error {
	if err := os.RemoveAll(PreviewDir()); err != nil {
		return newError(KindFilesystem, "remove preview directory", err)
	}
	return nil
}
