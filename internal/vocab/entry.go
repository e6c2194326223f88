package vocab

import "time"

// Defaults substituted for NULL columns.
const (
	DefaultBook   = "Unknown Book"
	DefaultWord   = "Unknown Word"
	DefaultPhrase = "No context available"
)

// DateLayout is the calendar date format used for selections, front matter,
// and file names.
const DateLayout = "2006-01-02"

// Record is a raw vocabulary row. Nil fields were NULL in the database.
type Record struct {
	Book       *string
	Word       *string
	Phrase     *string
	CreateTime *int64 // epoch seconds, UTC
}

// Entry is a normalized vocabulary row.
type Entry struct {
	Book   string `json:"book"`
	Word   string `json:"word"`
	Phrase string `json:"phrase"`
	Date   string `json:"date"` // local calendar date, YYYY-MM-DD
}

// Normalize converts a record into an entry, converting its timestamp into a
// calendar date in loc. Returns false if the record has no timestamp.
func Normalize(rec Record, loc *time.Location) (Entry, bool) {
	if rec.CreateTime == nil {
		return Entry{}, false
	}
	return Entry{
		Book:   orDefault(rec.Book, DefaultBook),
		Word:   orDefault(rec.Word, DefaultWord),
		Phrase: orDefault(rec.Phrase, DefaultPhrase),
		Date:   LocalDate(*rec.CreateTime, loc),
	}, true
}

// NormalizeAll normalizes records in order, dropping those without a timestamp.
func NormalizeAll(records []Record, loc *time.Location) []Entry {
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		if entry, ok := Normalize(rec, loc); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// LocalDate returns the calendar date of the epoch instant in loc.
func LocalDate(epochSeconds int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(epochSeconds, 0).In(loc).Format(DateLayout)
}

// orDefault treats both NULL and the empty string as missing.
func orDefault(value *string, fallback string) string {
	if value == nil || *value == "" {
		return fallback
	}
	return *value
}
