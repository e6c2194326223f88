package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/vocabmd/internal/export"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write vocabulary entries as Markdown notes",
		Long: `Write vocabulary entries as Markdown notes under --out.

Without --per-book or --per-date everything goes into a single
vocabulary_builder.md. Existing notes at the same paths are replaced, so
running the same export twice gives the same files.

Layouts:
  --per-book --per-date      <out>/<book>/<date>.md
  --per-date --folder F      <out>/F/<date>.md
  --per-book                 <out>/<book>/<book>.md
  --per-date                 <out>/by_date/<date>.md
  (neither)                  <out>/vocabulary_builder.md

Examples:
  vocabmd export --db vocabulary_builder.sqlite3 --out ./vault/Vocabulary
  vocabmd export --per-book --per-date --timezone Asia/Tokyo
  vocabmd export --date 2024-01-01,2024-01-02 --book "Dune"
  vocabmd export --no-metadata --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, verbose)
		},
	}

	addSourceFlags(cmd)
	addLayoutFlags(cmd)
	cmd.Flags().String("out", ".", "Folder to write notes under")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print each note as it is written")
	cmd.Flags().Bool("no-metadata", false, "Shorthand for --metadata=false")

	return cmd
}

// runExport executes the export command.
func runExport(cmd *cobra.Command, verbose bool) error {
	printer := newPrinter(cmd)

	if noMetadata, _ := cmd.Flags().GetBool("no-metadata"); noMetadata {
		if err := cmd.Flags().Set("metadata", "false"); err != nil {
			return fail(printer, err)
		}
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return fail(printer, err)
	}

	opts, err := exportOptions(cmd.Context(), cmd, settings)
	if err != nil {
		return fail(printer, err)
	}

	result, err := export.Export(cmd.Context(), opts)
	if err != nil {
		return fail(printer, err)
	}

	if verbose {
		for _, path := range result.Files {
			printer.Stderr("wrote %s\n", path)
		}
	}

	if printer.IsJSON() {
		return export.FormatJSON(printer, result)
	}

	if len(result.Files) == 0 {
		printer.Warn("no vocabulary entries matched; nothing was written")
		return nil
	}
	return printer.Success(map[string]any{
		"message": fmt.Sprintf("Exported %s to %s", plural(len(result.Files), "note"), result.Root),
	})
}

// plural formats a count with a noun, adding "s" unless n is 1.
func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
