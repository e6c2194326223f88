package vocab

import (
	"maps"
	"slices"
)

// AllBooks is the book filter value meaning "every book".
const AllBooks = "(All)"

// Selection is the user's filter choice: which of the known dates are
// checked and which book is picked. The zero value selects everything.
type Selection struct {
	dates map[string]bool
	book  string
}

// NewSelection builds a selection over the known dates. Dates in selected
// that are not known are added as checked. An empty book means AllBooks.
func NewSelection(known, selected []string, book string) Selection {
	dates := make(map[string]bool, len(known)+len(selected))
	for _, d := range known {
		dates[d] = false
	}
	for _, d := range selected {
		dates[d] = true
	}
	if book == "" {
		book = AllBooks
	}
	return Selection{dates: dates, book: book}
}

// SelectionFromChecks builds a selection from a date → checked mapping, the
// shape a list of checkboxes produces.
func SelectionFromChecks(checks map[string]bool, book string) Selection {
	if book == "" {
		book = AllBooks
	}
	return Selection{dates: maps.Clone(checks), book: book}
}

// Book returns the book filter, AllBooks when unfiltered.
func (s Selection) Book() string {
	if s.book == "" {
		return AllBooks
	}
	return s.book
}

// FiltersBook reports whether only one book is selected.
func (s Selection) FiltersBook() bool {
	return s.Book() != AllBooks
}

// KnownDates returns every date the selection knows about, sorted.
func (s Selection) KnownDates() []string {
	return slices.Sorted(maps.Keys(s.dates))
}

// SelectedDates returns the checked dates, sorted.
func (s Selection) SelectedDates() []string {
	var selected []string
	for d, checked := range s.dates {
		if checked {
			selected = append(selected, d)
		}
	}
	slices.Sort(selected)
	return selected
}

// FiltersDates reports whether a date filter applies. Checking nothing and
// checking every known date both leave the export unfiltered.
func (s Selection) FiltersDates() bool {
	n := len(s.SelectedDates())
	return n > 0 && n < len(s.dates)
}

// Includes reports whether an entry dated date passes the date filter.
func (s Selection) Includes(date string) bool {
	if !s.FiltersDates() {
		return true
	}
	return s.dates[date]
}
