package vocab

import (
	"cmp"
	"slices"
)

// GroupKey identifies a group. Book is set only when grouping per book and
// Date only when grouping per date; unset fields are empty.
type GroupKey struct {
	Book string `json:"book,omitempty"`
	Date string `json:"date,omitempty"`
}

// String returns the key as "book/date", omitting unset parts.
func (k GroupKey) String() string {
	switch {
	case k.Book != "" && k.Date != "":
		return k.Book + "/" + k.Date
	case k.Book != "":
		return k.Book
	default:
		return k.Date
	}
}

func compareKeys(a, b GroupKey) int {
	if c := cmp.Compare(a.Book, b.Book); c != 0 {
		return c
	}
	return cmp.Compare(a.Date, b.Date)
}

// Group is a set of entries that end up in the same document.
type Group struct {
	Key     GroupKey
	Entries []Entry
}

// Books returns the distinct book names in the group, sorted.
func (g Group) Books() []string {
	return distinct(g.Entries, func(e Entry) string { return e.Book })
}

// Dates returns the distinct dates in the group, sorted.
func (g Group) Dates() []string {
	return distinct(g.Entries, func(e Entry) string { return e.Date })
}

// GroupEntries partitions entries by book and/or date. Every entry lands in
// exactly one group, in its original relative order. Groups are returned
// sorted by key. With neither flag set there is a single group.
func GroupEntries(entries []Entry, perBook, perDate bool) []Group {
	index := make(map[GroupKey]int)
	var groups []Group
	for _, entry := range entries {
		var key GroupKey
		if perBook {
			key.Book = entry.Book
		}
		if perDate {
			key.Date = entry.Date
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	slices.SortStableFunc(groups, func(a, b Group) int {
		return compareKeys(a.Key, b.Key)
	})
	return groups
}

// distinct collects the non-empty values of field, sorted and de-duplicated.
func distinct(entries []Entry, field func(Entry) string) []string {
	var values []string
	for _, e := range entries {
		if v := field(e); v != "" {
			values = append(values, v)
		}
	}
	slices.Sort(values)
	return slices.Compact(values)
}
