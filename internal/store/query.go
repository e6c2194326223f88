package store

import (
	"strings"
	"time"

	"github.com/gorewood/vocabmd/internal/vocab"
)

// phraseExpr builds the context phrase: the highlighted term (or the word)
// wrapped in == between its surrounding context, with newlines turned into
// <br>. SQL NULL propagation makes the phrase NULL when a context is NULL.
const phraseExpr = `REPLACE(a.prev_context || '==' || COALESCE(a.highlight, a.word) || '==' || a.next_context, CHAR(10), '<br>')`

const selectRecords = `SELECT
	b.name AS book,
	a.word,
	` + phraseExpr + ` AS phrase,
	a.create_time AS timestamp
FROM vocabulary AS a
LEFT JOIN title AS b ON a.title_id = b.id`

// orderRecords keeps row order stable across runs. rowid exists on every
// ordinary SQLite table, whatever the declared key.
const orderRecords = ` ORDER BY a.create_time ASC, a.rowid ASC`

// Query is a parameterised SQL statement. Args match the placeholders in
// order.
type Query struct {
	SQL  string
	Args []any
}

// BuildQuery builds the record query for a selection. Each selected date
// contributes a [start of day, start of next day) range in loc; ranges are
// OR-ed together and AND-ed with the book filter. No date condition is added
// when the selection does not filter dates.
func BuildQuery(sel vocab.Selection, loc *time.Location) (Query, error) {
	var filters []string
	var args []any

	if sel.FiltersDates() {
		cond, dateArgs, err := dateCondition(sel.SelectedDates(), loc)
		if err != nil {
			return Query{}, err
		}
		filters = append(filters, cond)
		args = append(args, dateArgs...)
	}

	if sel.FiltersBook() {
		filters = append(filters, "b.name = ?")
		args = append(args, sel.Book())
	}

	var sb strings.Builder
	sb.WriteString(selectRecords)
	if len(filters) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(filters, " AND "))
	}
	sb.WriteString(orderRecords)

	return Query{SQL: sb.String(), Args: args}, nil
}

// dateCondition returns "(range OR range ...)" and its start/end arguments.
func dateCondition(dates []string, loc *time.Location) (string, []any, error) {
	terms := make([]string, 0, len(dates))
	args := make([]any, 0, 2*len(dates))
	for _, date := range dates {
		start, end, err := vocab.DayBounds(date, loc)
		if err != nil {
			return "", nil, err
		}
		terms = append(terms, "(a.create_time >= ? AND a.create_time < ?)")
		args = append(args, start, end)
	}
	return "(" + strings.Join(terms, " OR ") + ")", args, nil
}
