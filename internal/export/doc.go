// Package export turns vocabulary from the reading application's database
// into Markdown notes.
//
// # Pipeline
//
// Export runs the whole pipeline for one set of options:
//
//	result, err := export.Export(ctx, export.Options{
//		DBPath:          "vocabulary_builder.sqlite3",
//		Root:            "/path/to/vault",
//		Selection:       sel,
//		Layout:          export.Layout{PerDate: true},
//		Timezone:        "+09:00",
//		IncludeMetadata: true,
//	})
//
// It builds the query (store.BuildQuery), reads and normalizes the rows
// (vocab.NormalizeAll, vocab.FilterByDates), groups them
// (vocab.GroupEntries), then renders and writes one note per group.
//
// # Note Format
//
// With metadata enabled a note starts with front matter that note-taking
// tools read by key:
//
//	---
//	tags:
//	  - english-learning
//	  - reading
//	book:
//	  - "Alice in Wonderland"
//	dates: 2024-01-01
//	pages:
//	---
//
// followed by one section per word:
//
//	## curious
//	> [!note] Context
//	> Curiouser and ==curiouser==!
//
// When notes are not split per book, a "# <book>" heading starts each run of
// words from the same book.
//
// # File Layout
//
// See PlanPath. File and folder names derived from books and dates go
// through Sanitize.
//
// # Errors
//
// Every failure is an *Error carrying a Kind (database, timezone, date
// format, filesystem). Notes written before the failure are left in place.
//
// # Preview
//
// Preview is Export into PreviewDir() followed by reading the notes back.
// CleanupPreview removes the directory.
package export
