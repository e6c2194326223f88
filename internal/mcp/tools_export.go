package mcp

import (
	"context"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/vocabmd/internal/config"
	"github.com/gorewood/vocabmd/internal/export"
)

// writeMu serializes the tools that write notes. Tool calls run
// concurrently, and every preview shares export.PreviewDir().
var writeMu sync.Mutex

// ExportInput is the input for the export tool.
type ExportInput struct {
	DB       string   `json:"db,omitempty"       jsonschema:"path to vocabulary_builder.sqlite3 (default from config)"`
	Out      string   `json:"out,omitempty"      jsonschema:"folder to write notes under (default from config)"`
	Timezone string   `json:"timezone,omitempty" jsonschema:"IANA name, UTC or an offset like +09:00 (default local)"`
	Book     string   `json:"book,omitempty"     jsonschema:"export only this book"`
	Dates    []string `json:"dates,omitempty"    jsonschema:"export only these YYYY-MM-DD dates; empty means all"`
	PerBook  *bool    `json:"per_book,omitempty" jsonschema:"one note per book"`
	PerDate  *bool    `json:"per_date,omitempty" jsonschema:"one note per date"`
	Folder   string   `json:"folder,omitempty"   jsonschema:"folder for per-date notes (default by_date)"`
	Metadata *bool    `json:"metadata,omitempty" jsonschema:"write YAML front matter (default true)"`
}

// ExportOutput is the output for the export tool.
type ExportOutput struct {
	Root  string   `json:"root"  jsonschema:"absolute output folder"`
	Count int      `json:"count" jsonschema:"number of notes written"`
	Files []string `json:"files" jsonschema:"absolute paths of the notes written"`
}

func handleExport(settings config.Settings) mcp.ToolHandlerFor[ExportInput, ExportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportInput) (*mcp.CallToolResult, ExportOutput, error) {
		writeMu.Lock()
		defer writeMu.Unlock()

		opts, err := newExportRequest(settings, input).options(ctx)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		result, err := export.Export(ctx, opts)
		if err != nil {
			return nil, ExportOutput{}, err
		}

		files := result.Files
		if files == nil {
			files = []string{}
		}
		return nil, ExportOutput{Root: result.Root, Count: len(files), Files: files}, nil
	}
}

// PreviewInput is the input for the preview tool.
type PreviewInput struct {
	DB       string   `json:"db,omitempty"       jsonschema:"path to vocabulary_builder.sqlite3 (default from config)"`
	Timezone string   `json:"timezone,omitempty" jsonschema:"IANA name, UTC or an offset like +09:00 (default local)"`
	Book     string   `json:"book,omitempty"     jsonschema:"preview only this book"`
	Dates    []string `json:"dates,omitempty"    jsonschema:"preview only these YYYY-MM-DD dates; empty means all"`
	PerBook  *bool    `json:"per_book,omitempty" jsonschema:"one note per book"`
	PerDate  *bool    `json:"per_date,omitempty" jsonschema:"one note per date"`
	Folder   string   `json:"folder,omitempty"   jsonschema:"folder for per-date notes (default by_date)"`
	Metadata *bool    `json:"metadata,omitempty" jsonschema:"include YAML front matter (default true)"`
}

// PreviewOutput is the output for the preview tool.
type PreviewOutput struct {
	Count int           `json:"count" jsonschema:"number of notes"`
	Notes []export.Note `json:"notes" jsonschema:"each note with its parsed front matter and word count"`
	Text  string        `json:"text"  jsonschema:"all notes concatenated, each followed by a blank line"`
}

func handlePreview(settings config.Settings) mcp.ToolHandlerFor[PreviewInput, PreviewOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PreviewInput) (*mcp.CallToolResult, PreviewOutput, error) {
		writeMu.Lock()
		defer writeMu.Unlock()

		req := newExportRequest(settings, ExportInput{
			DB:       input.DB,
			Timezone: input.Timezone,
			Book:     input.Book,
			Dates:    input.Dates,
			PerBook:  input.PerBook,
			PerDate:  input.PerDate,
			Folder:   input.Folder,
			Metadata: input.Metadata,
		})
		opts, err := req.options(ctx)
		if err != nil {
			return nil, PreviewOutput{}, err
		}

		preview, err := export.Preview(ctx, opts)
		if err != nil {
			return nil, PreviewOutput{}, err
		}
		if err := export.CleanupPreview(); err != nil {
			return nil, PreviewOutput{}, err
		}

		return nil, PreviewOutput{Count: len(preview.Notes), Notes: preview.Notes, Text: preview.Text}, nil
	}
}
