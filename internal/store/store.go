package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gorewood/vocabmd/internal/vocab"
)

// Store provides read-only access to a vocabulary database.
type Store struct {
	db *sql.DB
}

// dsnEscaper escapes the characters that would end the path part of a
// SQLite URI filename.
var dsnEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// Open opens the database at path read-only and verifies the connection.
// A missing file is an error; it is never created.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("no database path given")
	}

	dsn := "file:" + dsnEscaper.Replace(filepath.ToSlash(path)) + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Records runs q and scans every row into a Record.
func (s *Store) Records(ctx context.Context, q Query) ([]vocab.Record, error) {
	rows, err := s.db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("query vocabulary: %w", err)
	}
	defer rows.Close()

	var records []vocab.Record
	for rows.Next() {
		var book, word, phrase sql.NullString
		var created sql.NullInt64
		if err := rows.Scan(&book, &word, &phrase, &created); err != nil {
			return nil, fmt.Errorf("scan vocabulary row: %w", err)
		}
		records = append(records, vocab.Record{
			Book:       nullString(book),
			Word:       nullString(word),
			Phrase:     nullString(phrase),
			CreateTime: nullInt64(created),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read vocabulary rows: %w", err)
	}
	return records, nil
}

// Dates returns the distinct local dates that have vocabulary, sorted.
// An empty book or vocab.AllBooks lists dates across all books.
func (s *Store) Dates(ctx context.Context, book string, loc *time.Location) ([]string, error) {
	query := `SELECT DISTINCT a.create_time
FROM vocabulary AS a
LEFT JOIN title AS b ON a.title_id = b.id
WHERE a.create_time IS NOT NULL`
	var args []any
	if book != "" && book != vocab.AllBooks {
		query += " AND b.name = ?"
		args = append(args, book)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var ts int64
		if err := rows.Scan(&ts); err != nil {
			return nil, fmt.Errorf("scan date row: %w", err)
		}
		dates = append(dates, vocab.LocalDate(ts, loc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read date rows: %w", err)
	}

	slices.Sort(dates)
	return slices.Compact(dates), nil
}

// Books returns the distinct book names with vocabulary, sorted. Missing and
// empty names are left out since export files them under the default book.
// When dates is non-empty only books with vocabulary on those local dates
// are listed.
func (s *Store) Books(ctx context.Context, dates []string, loc *time.Location) ([]string, error) {
	query := `SELECT DISTINCT b.name
FROM vocabulary AS a
LEFT JOIN title AS b ON a.title_id = b.id
WHERE b.name IS NOT NULL AND b.name <> ''`
	var args []any
	if len(dates) > 0 {
		cond, dateArgs, err := dateCondition(dates, loc)
		if err != nil {
			return nil, err
		}
		query += " AND " + cond
		args = dateArgs
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	var books []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan book row: %w", err)
		}
		books = append(books, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read book rows: %w", err)
	}

	slices.Sort(books)
	return books, nil
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

func nullInt64(ni sql.NullInt64) *int64 {
	if !ni.Valid {
		return nil
	}
	return &ni.Int64
}
