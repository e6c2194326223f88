package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/vocabmd/internal/config"
)

// ListDatesInput is the input for the list_dates tool.
type ListDatesInput struct {
	DB       string `json:"db,omitempty"       jsonschema:"path to vocabulary_builder.sqlite3 (default from config)"`
	Timezone string `json:"timezone,omitempty" jsonschema:"IANA name, UTC or an offset like +09:00 (default local)"`
	Book     string `json:"book,omitempty"     jsonschema:"only dates with entries from this book"`
}

// ListDatesOutput is the output for the list_dates tool.
type ListDatesOutput struct {
	Count int      `json:"count" jsonschema:"number of dates"`
	Dates []string `json:"dates" jsonschema:"sorted YYYY-MM-DD dates"`
}

func handleListDates(settings config.Settings) mcp.ToolHandlerFor[ListDatesInput, ListDatesOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListDatesInput) (*mcp.CallToolResult, ListDatesOutput, error) {
		st, loc, err := openCatalog(firstNonEmpty(input.DB, settings.DB), firstNonEmpty(input.Timezone, settings.Timezone))
		if err != nil {
			return nil, ListDatesOutput{}, err
		}
		defer st.Close()

		dates, err := st.Dates(ctx, firstNonEmpty(input.Book, settings.Book), loc)
		if err != nil {
			return nil, ListDatesOutput{}, fmt.Errorf("listing dates: %w", err)
		}
		if dates == nil {
			dates = []string{}
		}
		return nil, ListDatesOutput{Count: len(dates), Dates: dates}, nil
	}
}

// ListBooksInput is the input for the list_books tool.
type ListBooksInput struct {
	DB       string   `json:"db,omitempty"       jsonschema:"path to vocabulary_builder.sqlite3 (default from config)"`
	Timezone string   `json:"timezone,omitempty" jsonschema:"IANA name, UTC or an offset like +09:00 (default local)"`
	Dates    []string `json:"dates,omitempty"    jsonschema:"only books with entries on these YYYY-MM-DD dates"`
}

// ListBooksOutput is the output for the list_books tool.
type ListBooksOutput struct {
	Count int      `json:"count" jsonschema:"number of books"`
	Books []string `json:"books" jsonschema:"sorted book titles"`
}

func handleListBooks(settings config.Settings) mcp.ToolHandlerFor[ListBooksInput, ListBooksOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ListBooksInput) (*mcp.CallToolResult, ListBooksOutput, error) {
		st, loc, err := openCatalog(firstNonEmpty(input.DB, settings.DB), firstNonEmpty(input.Timezone, settings.Timezone))
		if err != nil {
			return nil, ListBooksOutput{}, err
		}
		defer st.Close()

		books, err := st.Books(ctx, input.Dates, loc)
		if err != nil {
			return nil, ListBooksOutput{}, fmt.Errorf("listing books: %w", err)
		}
		if books == nil {
			books = []string{}
		}
		return nil, ListBooksOutput{Count: len(books), Books: books}, nil
	}
}
