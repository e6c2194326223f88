package export

import (
	"github.com/gorewood/vocabmd/internal/output"
)

// resultJSON is the structured form of a Result.
type resultJSON struct {
	Root  string   `json:"root"`
	Count int      `json:"count"`
	Files []string `json:"files"`
}

func newResultJSON(result *Result) resultJSON {
	files := result.Files
	if files == nil {
		files = []string{}
	}
	return resultJSON{Root: result.Root, Count: len(files), Files: files}
}

// FormatJSON writes the result as a JSON object to the printer.
func FormatJSON(printer *output.Printer, result *Result) error {
	return printer.WriteJSON(newResultJSON(result))
}

// FormatPreviewJSON writes a preview result as JSON to the printer.
func FormatPreviewJSON(printer *output.Printer, preview *PreviewResult) error {
	return printer.WriteJSON(struct {
		resultJSON
		Notes []Note `json:"notes"`
		Text  string `json:"text"`
	}{
		resultJSON: newResultJSON(&preview.Result),
		Notes:      preview.Notes,
		Text:       preview.Text,
	})
}
