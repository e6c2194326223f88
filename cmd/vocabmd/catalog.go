package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gorewood/vocabmd/internal/output"
)

// newDatesCmd creates the dates command.
func newDatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dates",
		Short: "List the dates that have vocabulary",
		Long: `List the local dates (YYYY-MM-DD) on which words were looked up, oldest
first. Use the output to pick values for export --date.

Examples:
  vocabmd dates
  vocabmd dates --book "Dune" --timezone Asia/Tokyo
  vocabmd dates --json`,
		RunE: runDates,
	}
	addSourceFlags(cmd)
	cmd.Flags().String("book", "", "Only dates with entries from this book")
	return cmd
}

func runDates(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return fail(printer, err)
	}

	st, loc, err := openCatalog(settings)
	if err != nil {
		return fail(printer, err)
	}
	defer st.Close()

	dates, err := st.Dates(cmd.Context(), settings.Book, loc)
	if err != nil {
		return fail(printer, err)
	}

	return printCatalog(printer, "dates", "Dates", dates)
}

// newBooksCmd creates the books command.
func newBooksCmd() *cobra.Command {
	var dates []string

	cmd := &cobra.Command{
		Use:   "books",
		Short: "List the books that have vocabulary",
		Long: `List the titles of books with looked-up words, sorted by name. With
--date, only books with lookups on those dates are listed.

Examples:
  vocabmd books
  vocabmd books --date 2024-01-01 --date 2024-01-02
  vocabmd books --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBooks(cmd, dates)
		},
	}
	addSourceFlags(cmd)
	cmd.Flags().StringSliceVar(&dates, "date", nil, "Only books with entries on these dates, YYYY-MM-DD")
	return cmd
}

func runBooks(cmd *cobra.Command, dates []string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return fail(printer, err)
	}

	st, loc, err := openCatalog(settings)
	if err != nil {
		return fail(printer, err)
	}
	defer st.Close()

	books, err := st.Books(cmd.Context(), dates, loc)
	if err != nil {
		return fail(printer, err)
	}

	return printCatalog(printer, "books", "Books", books)
}

// printCatalog prints a list as {"count": N, key: [...]} in JSON mode, as a
// titled bullet list on a terminal, and one item per line when piped.
func printCatalog(printer *output.Printer, key, title string, items []string) error {
	if items == nil {
		items = []string{}
	}
	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"count": len(items), key: items})
	}
	if printer.IsTTY() {
		printer.Section(fmt.Sprintf("%s (%d)", title, len(items)))
	}
	printer.List(items)
	return nil
}
