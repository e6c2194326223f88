package vocab

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(i int64) *int64   { return &i }

func TestNormalize_Defaults(t *testing.T) {
	rec := Record{CreateTime: intPtr(1704067200)} // 2024-01-01T00:00:00Z

	entry, ok := Normalize(rec, time.UTC)
	if !ok {
		t.Fatal("Normalize() dropped a record with a timestamp")
	}

	want := Entry{
		Book:   DefaultBook,
		Word:   DefaultWord,
		Phrase: DefaultPhrase,
		Date:   "2024-01-01",
	}
	if entry != want {
		t.Errorf("Normalize() = %+v, want %+v", entry, want)
	}
}

func TestNormalize_EmptyStringsUseDefaults(t *testing.T) {
	rec := Record{Book: strPtr(""), Word: strPtr(""), Phrase: strPtr(""), CreateTime: intPtr(0)}

	entry, _ := Normalize(rec, time.UTC)
	if entry.Book != DefaultBook || entry.Word != DefaultWord || entry.Phrase != DefaultPhrase {
		t.Errorf("Normalize() = %+v, want defaults for empty strings", entry)
	}
}

func TestNormalize_NullTimestampDropped(t *testing.T) {
	rec := Record{Book: strPtr("Dune"), Word: strPtr("spice")}
	if _, ok := Normalize(rec, time.UTC); ok {
		t.Error("Normalize() kept a record without a timestamp")
	}
}

func TestLocalDate(t *testing.T) {
	tokyo := time.FixedZone("UTC+09:00", 9*3600)
	newYork := time.FixedZone("UTC-05:00", -5*3600)

	tests := []struct {
		name string
		ts   int64
		loc  *time.Location
		want string
	}{
		{name: "utc midnight", ts: 1704067200, loc: time.UTC, want: "2024-01-01"},
		{name: "utc last second of day", ts: 1704153599, loc: time.UTC, want: "2024-01-01"},
		{name: "+9 shifts before boundary", ts: 1704067200 - 9*3600 - 1, loc: tokyo, want: "2023-12-31"},
		{name: "+9 shifts at boundary", ts: 1704067200 - 9*3600, loc: tokyo, want: "2024-01-01"},
		{name: "+9 late utc evening is next day", ts: 1704067200 + 15*3600, loc: tokyo, want: "2024-01-02"},
		{name: "-5 early utc morning is previous day", ts: 1704067200 + 4*3600, loc: newYork, want: "2023-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalDate(tt.ts, tt.loc); got != tt.want {
				t.Errorf("LocalDate(%d) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestNormalizeAll_PreservesOrder(t *testing.T) {
	records := []Record{
		{Word: strPtr("first"), CreateTime: intPtr(300)},
		{Word: strPtr("dropped")},
		{Word: strPtr("second"), CreateTime: intPtr(100)},
	}

	entries := NormalizeAll(records, time.UTC)
	if len(entries) != 2 {
		t.Fatalf("NormalizeAll() returned %d entries, want 2", len(entries))
	}
	if entries[0].Word != "first" || entries[1].Word != "second" {
		t.Errorf("NormalizeAll() order = [%s %s], want [first second]", entries[0].Word, entries[1].Word)
	}
}
