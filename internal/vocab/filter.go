package vocab

// FilterByDates keeps the entries whose local date passes the selection.
// The query already restricts rows to epoch ranges; this pass checks the
// converted calendar date itself.
func FilterByDates(entries []Entry, sel Selection) []Entry {
	if !sel.FiltersDates() {
		return entries
	}
	var result []Entry
	for _, entry := range entries {
		if sel.Includes(entry.Date) {
			result = append(result, entry)
		}
	}
	return result
}
