package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gorewood/vocabmd/internal/config"
	"github.com/gorewood/vocabmd/internal/export"
	"github.com/gorewood/vocabmd/internal/store"
	"github.com/gorewood/vocabmd/internal/vocab"
)

var errNoDatabase = errors.New("db is required: pass it in the call or set db in the vocabmd config")

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

// openCatalog opens the database and parses the timezone.
func openCatalog(dbPath, timezone string) (*store.Store, *time.Location, error) {
	if dbPath == "" {
		return nil, nil, errNoDatabase
	}
	loc, err := vocab.ParseLocation(timezone)
	if err != nil {
		return nil, nil, err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return st, loc, nil
}

// exportRequest is what the export and preview tools have in common, with
// settings already applied.
type exportRequest struct {
	db       string
	out      string
	timezone string
	book     string
	dates    []string
	layout   export.Layout
	metadata bool
}

// options resolves the date selection against the database and returns the
// export options.
func (r exportRequest) options(ctx context.Context) (export.Options, error) {
	st, loc, err := openCatalog(r.db, r.timezone)
	if err != nil {
		return export.Options{}, err
	}
	defer st.Close()

	sel, err := st.Select(ctx, r.dates, r.book, loc)
	if err != nil {
		return export.Options{}, fmt.Errorf("selecting dates: %w", err)
	}

	return export.Options{
		DBPath:          r.db,
		Root:            r.out,
		Selection:       sel,
		Layout:          r.layout,
		Timezone:        r.timezone,
		IncludeMetadata: r.metadata,
	}, nil
}

func newExportRequest(settings config.Settings, in ExportInput) exportRequest {
	return exportRequest{
		db:       firstNonEmpty(in.DB, settings.DB),
		out:      firstNonEmpty(in.Out, settings.Out),
		timezone: firstNonEmpty(in.Timezone, settings.Timezone),
		book:     firstNonEmpty(in.Book, settings.Book),
		dates:    in.Dates,
		layout: export.Layout{
			PerBook:    boolOr(in.PerBook, settings.PerBook),
			PerDate:    boolOr(in.PerDate, settings.PerDate),
			FolderName: firstNonEmpty(in.Folder, settings.Folder),
		},
		metadata: boolOr(in.Metadata, settings.Metadata),
	}
}
