package store

import (
	"context"
	"time"

	"github.com/gorewood/vocabmd/internal/vocab"
)

// Select builds a selection of dates against the dates known for book, the
// way a list of date checkboxes would present them. No dates, or every
// known date, leaves the selection unfiltered. Dates that are not known
// stay selected, so they still narrow the export.
func (s *Store) Select(ctx context.Context, dates []string, book string, loc *time.Location) (vocab.Selection, error) {
	for _, d := range dates {
		if _, err := vocab.ParseDate(d, loc); err != nil {
			return vocab.Selection{}, err
		}
	}

	known, err := s.Dates(ctx, book, loc)
	if err != nil {
		return vocab.Selection{}, err
	}
	return vocab.NewSelection(known, dates, book), nil
}
