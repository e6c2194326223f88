package export

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"time"

	"github.com/gorewood/vocabmd/internal/store"
	"github.com/gorewood/vocabmd/internal/vocab"
)

// Options describe one export run.
type Options struct {
	DBPath          string          // vocabulary database to read
	Root            string          // directory notes are written under
	Selection       vocab.Selection // date and book filter
	Layout          Layout          // how notes are split and placed
	Timezone        string          // see vocab.ParseLocation; empty means local
	IncludeMetadata bool            // write YAML front matter
}

// Result lists the notes written by a run.
type Result struct {
	Root  string   `json:"root"`
	Files []string `json:"files"` // absolute paths, sorted, each listed once
}

// Export reads the database and writes one note per group under opts.Root.
// The first failure aborts the run; notes already written stay on disk.
func Export(ctx context.Context, opts Options) (*Result, error) {
	loc, err := vocab.ParseLocation(opts.Timezone)
	if err != nil {
		return nil, newError(KindTimezone, "parse timezone", err)
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, newError(KindFilesystem, "resolve output directory", err)
	}

	entries, err := loadEntries(ctx, opts.DBPath, opts.Selection, loc)
	if err != nil {
		return nil, err
	}

	if err := ensureDir(root); err != nil {
		return nil, err
	}

	var files []string
	layout := opts.Layout
	mdOpts := MarkdownOptions{PerBook: layout.PerBook, IncludeMetadata: opts.IncludeMetadata}
	for _, group := range vocab.GroupEntries(entries, layout.PerBook, layout.PerDate) {
		dir, filename := PlanPath(root, layout, group.Books(), group.Dates())
		path, err := writeNote(dir, filename, FormatMarkdown(group, mdOpts))
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}

	slices.Sort(files)
	return &Result{Root: root, Files: slices.Compact(files)}, nil
}

// loadEntries queries the database and returns the normalized entries that
// pass the selection. The database is closed before returning.
func loadEntries(ctx context.Context, dbPath string, sel vocab.Selection, loc *time.Location) ([]vocab.Entry, error) {
	query, err := store.BuildQuery(sel, loc)
	if err != nil {
		if errors.Is(err, vocab.ErrInvalidDate) {
			return nil, newError(KindDateFormat, "parse selected dates", err)
		}
		return nil, newError(KindDatabase, "build query", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, newError(KindDatabase, "open database", err)
	}
	defer st.Close()

	records, err := st.Records(ctx, query)
	if err != nil {
		return nil, newError(KindDatabase, "read vocabulary", err)
	}

	return vocab.FilterByDates(vocab.NormalizeAll(records, loc), sel), nil
}
