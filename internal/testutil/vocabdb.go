// Package testutil provides shared fixtures for tests.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// schemaSQL mirrors the tables the reading application writes.
const schemaSQL = `
CREATE TABLE title (
	id   INTEGER PRIMARY KEY,
	name TEXT
);
CREATE TABLE vocabulary (
	id           INTEGER PRIMARY KEY,
	title_id     INTEGER,
	word         TEXT,
	prev_context TEXT,
	highlight    TEXT,
	next_context TEXT,
	create_time  INTEGER
);`

// Row is one vocabulary row to insert. An empty Book leaves title_id NULL.
// Nil pointers are stored as NULL.
type Row struct {
	Book       string
	Word       *string
	Prev       *string
	Highlight  *string
	Next       *string
	CreateTime *int64
}

// Str returns a pointer to s.
func Str(s string) *string { return &s }

// Time returns a pointer to the epoch seconds ts.
func Time(ts int64) *int64 { return &ts }

// Word builds a row with a word, a context on both sides, and a timestamp.
func Word(book, word, prev, next string, ts int64) Row {
	return Row{Book: book, Word: Str(word), Prev: Str(prev), Next: Str(next), CreateTime: Time(ts)}
}

// NewVocabDB creates a vocabulary database file under t.TempDir() holding
// rows, inserted in order. Books get title ids in order of first
// appearance. Returns the file path.
func NewVocabDB(t *testing.T, rows []Row) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vocabulary_builder.sqlite3")
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(schemaSQL); err != nil {
		t.Fatalf("create fixture schema: %v", err)
	}

	titles := make(map[string]int64)
	for _, row := range rows {
		var titleID any
		if row.Book != "" {
			id, ok := titles[row.Book]
			if !ok {
				res, err := db.Exec(`INSERT INTO title (name) VALUES (?)`, row.Book)
				if err != nil {
					t.Fatalf("insert title %q: %v", row.Book, err)
				}
				if id, err = res.LastInsertId(); err != nil {
					t.Fatalf("title id: %v", err)
				}
				titles[row.Book] = id
			}
			titleID = id
		}

		_, err := db.Exec(
			`INSERT INTO vocabulary (title_id, word, prev_context, highlight, next_context, create_time)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			titleID, row.Word, row.Prev, row.Highlight, row.Next, row.CreateTime,
		)
		if err != nil {
			t.Fatalf("insert vocabulary row: %v", err)
		}
	}

	return path
}

// Exec runs a statement against the fixture database at path, for tests
// that need rows NewVocabDB cannot express.
func Exec(t *testing.T, path, query string, args ...any) {
	t.Helper()
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
