package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/vocabmd/internal/config"
	"github.com/gorewood/vocabmd/internal/export"
	"github.com/gorewood/vocabmd/internal/output"
	"github.com/gorewood/vocabmd/internal/store"
	"github.com/gorewood/vocabmd/internal/vocab"
)

// addSourceFlags adds the flags that locate and interpret the database.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().String("db", "", "Path to vocabulary_builder.sqlite3")
	cmd.Flags().String("timezone", "", "Timezone for dates: IANA name, UTC or offset like +09:00 (default local)")
}

// addLayoutFlags adds the flags that decide how notes are split and rendered.
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().String("book", "", "Only this book")
	cmd.Flags().StringSlice("date", nil, "Only these dates, YYYY-MM-DD (repeat or comma-separate)")
	cmd.Flags().Bool("per-book", false, "One note per book, in a folder named after the book")
	cmd.Flags().Bool("per-date", false, "One note per date")
	cmd.Flags().String("folder", "", "Folder for per-date notes (default by_date)")
	cmd.Flags().Bool("metadata", true, "Write YAML front matter")
}

// loadSettings resolves settings with cmd's flags on top.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Load(cmd.Flags())
	if err != nil {
		return config.Settings{}, output.NewUserErrorWithCause(err.Error(), err)
	}
	return settings, nil
}

// openCatalog opens the configured database and parses the timezone.
func openCatalog(settings config.Settings) (*store.Store, *time.Location, error) {
	if settings.DB == "" {
		return nil, nil, output.NewUserError("no database given: use --db or set db in the vocabmd config")
	}
	loc, err := vocab.ParseLocation(settings.Timezone)
	if err != nil {
		return nil, nil, toExitError(err)
	}
	st, err := store.Open(settings.DB)
	if err != nil {
		return nil, nil, output.NewSystemErrorWithCause(err.Error(), err)
	}
	return st, loc, nil
}

// exportOptions builds export options from settings and the --date flag.
func exportOptions(ctx context.Context, cmd *cobra.Command, settings config.Settings) (export.Options, error) {
	dates, err := cmd.Flags().GetStringSlice("date")
	if err != nil {
		return export.Options{}, output.NewUserErrorWithCause(err.Error(), err)
	}

	st, loc, err := openCatalog(settings)
	if err != nil {
		return export.Options{}, err
	}
	defer st.Close()

	sel, err := st.Select(ctx, dates, settings.Book, loc)
	if err != nil {
		return export.Options{}, toExitError(err)
	}

	return export.Options{
		DBPath:    settings.DB,
		Root:      settings.Out,
		Selection: sel,
		Layout: export.Layout{
			PerBook:    settings.PerBook,
			PerDate:    settings.PerDate,
			FolderName: settings.Folder,
		},
		Timezone:        settings.Timezone,
		IncludeMetadata: settings.Metadata,
	}, nil
}

// toExitError assigns an exit code to err. Bad timezones and dates are
// the user's to fix; database and filesystem failures are system errors.
func toExitError(err error) error {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	switch {
	case export.IsKind(err, export.KindTimezone),
		export.IsKind(err, export.KindDateFormat),
		errors.Is(err, vocab.ErrInvalidTimezone),
		errors.Is(err, vocab.ErrInvalidDate):
		return output.NewUserErrorWithCause(err.Error(), err)
	default:
		return output.NewSystemErrorWithCause(err.Error(), err)
	}
}

// fail prints err and returns it with an exit code attached.
func fail(printer *output.Printer, err error) error {
	err = toExitError(err)
	printer.Error(err)
	return err
}
