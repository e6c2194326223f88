// Package mcp provides a Model Context Protocol server for vocabmd.
// It exposes the vocabulary catalog and the Markdown export as MCP tools.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/vocabmd/internal/config"
)

// NewServer creates an MCP server with all vocabmd tools registered.
// Tool inputs left empty fall back on settings.
func NewServer(version string, settings config.Settings) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "vocabmd",
		Version: version,
	}, nil)
	registerTools(server, settings)
	return server
}

func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for tools that only read the
// database.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// exportAnnotations marks export as a write that replaces existing notes.
func exportAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

// previewAnnotations marks preview as destructive: it clears the shared
// scratch folder, including one kept by "vocabmd preview --keep".
func previewAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		IdempotentHint:  true,
		OpenWorldHint:   boolPtr(false),
	}
}

func registerTools(server *mcp.Server, settings config.Settings) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_dates",
		Description: "List the local dates (YYYY-MM-DD) that have vocabulary entries, optionally for one book.",
		Annotations: readOnlyAnnotations(),
	}, handleListDates(settings))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_books",
		Description: "List the books that have vocabulary entries, optionally only those with entries on the given dates.",
		Annotations: readOnlyAnnotations(),
	}, handleListBooks(settings))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export",
		Description: "Export vocabulary entries as Markdown notes under an output folder, grouped per book and/or per date. Existing notes at the same paths are replaced.",
		Annotations: exportAnnotations(),
	}, handleExport(settings))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Render the notes an export would write and return their text and front matter without touching the output folder. The notes are rendered in a scratch folder under the system temp directory, which is cleared before and after the call.",
		Annotations: previewAnnotations(),
	}, handlePreview(settings))
}
