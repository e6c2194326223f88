package main

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/vocabmd/internal/export"
	"github.com/gorewood/vocabmd/internal/output"
)

// previewFlags holds the preview-only flags.
type previewFlags struct {
	summary bool
	keep    bool
	clean   bool
}

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var flags previewFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the notes an export would write",
		Long: `Render the notes an export would write and print them, without touching
the output folder. Notes are written to a scratch folder in the system temp
directory, printed one after another, and the folder is removed afterwards.

Examples:
  vocabmd preview --per-date                 # Print every per-date note
  vocabmd preview --per-book --summary       # One line per note: books, dates, words
  vocabmd preview --keep                     # Leave the scratch folder for inspection
  vocabmd preview --clean                    # Only remove the scratch folder`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, flags)
		},
	}

	addSourceFlags(cmd)
	addLayoutFlags(cmd)
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Print a table of notes instead of their text")
	cmd.Flags().BoolVar(&flags.keep, "keep", false, "Keep the scratch folder after printing")
	cmd.Flags().BoolVar(&flags.clean, "clean", false, "Remove the scratch folder and exit")

	return cmd
}

// runPreview executes the preview command.
func runPreview(cmd *cobra.Command, flags previewFlags) error {
	printer := newPrinter(cmd)

	if flags.clean {
		if err := export.CleanupPreview(); err != nil {
			return fail(printer, err)
		}
		return printer.Success(map[string]any{"message": "Removed " + export.PreviewDir(), "removed": export.PreviewDir()})
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return fail(printer, err)
	}

	opts, err := exportOptions(cmd.Context(), cmd, settings)
	if err != nil {
		return fail(printer, err)
	}

	preview, err := export.Preview(cmd.Context(), opts)
	if err != nil {
		return fail(printer, err)
	}

	if err := printPreview(printer, preview, flags.summary); err != nil {
		return err
	}

	if flags.keep {
		printer.Stderr("preview kept in %s\n", preview.Root)
		return nil
	}
	if err := export.CleanupPreview(); err != nil {
		return fail(printer, err)
	}
	return nil
}

func printPreview(printer *output.Printer, preview *export.PreviewResult, summary bool) error {
	switch {
	case printer.IsJSON():
		return export.FormatPreviewJSON(printer, preview)
	case len(preview.Notes) == 0:
		printer.Warn("no vocabulary entries matched; nothing to preview")
	case summary:
		printer.Table([]string{"Note", "Books", "Dates", "Words"}, summaryRows(preview))
	default:
		printer.Print("%s", preview.Text)
	}
	return nil
}

// summaryRows lists each note relative to the preview root. Books and dates
// come from the front matter and are blank when metadata is off.
func summaryRows(preview *export.PreviewResult) [][]string {
	rows := make([][]string, 0, len(preview.Notes))
	for _, note := range preview.Notes {
		rel, err := filepath.Rel(preview.Root, note.Path)
		if err != nil {
			rel = note.Path
		}
		var books, dates string
		if fm := note.FrontMatter; fm != nil {
			books = strings.Join(fm.Books, ", ")
			dates = strings.Join(fm.Dates, ", ")
		}
		rows = append(rows, []string{filepath.ToSlash(rel), books, dates, strconv.Itoa(note.Words)})
	}
	return rows
}
