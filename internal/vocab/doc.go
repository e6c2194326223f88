// Package vocab holds the vocabulary data model and the pure transformation
// steps of an export: normalizing raw database rows, filtering them by local
// calendar date, and partitioning them into groups.
//
// # Records and Entries
//
// A Record is one row as it comes out of the database. Every field is
// nullable:
//
//	rec := vocab.Record{Book: &title, Word: &word, CreateTime: &ts}
//
// Normalize turns a Record into an Entry, substituting defaults for missing
// text and converting the UTC epoch timestamp into a local calendar date:
//
//	entry, ok := vocab.Normalize(rec, loc) // ok is false when CreateTime is nil
//
// # Selections
//
// A Selection mirrors a list of date checkboxes plus a book picker. Checking
// no dates and checking every known date both mean "no date filtering":
//
//	sel := vocab.NewSelection(knownDates, []string{"2024-01-01"}, "Alice in Wonderland")
//	sel.FiltersDates() // true
//
// # Groups
//
// GroupEntries partitions entries by book and/or date. Groups come back
// sorted by key, and entries keep their original order inside a group.
package vocab
