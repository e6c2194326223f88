// Package store reads the vocabulary database written by the reading
// application.
//
// The schema is fixed by that application and is only ever read:
//
//	vocabulary(id, title_id, word, prev_context, highlight, next_context, create_time)
//	title(id, name)
//
// create_time holds epoch seconds in UTC. The database is opened read-only;
// nothing in this package issues writes.
//
// # Queries
//
// BuildQuery turns a selection into parameterised SQL. Values are never
// interpolated into the query text:
//
//	q, err := store.BuildQuery(sel, loc)
//	records, err := st.Records(ctx, q)
//
// # Catalog
//
// Dates and Books list what the database contains, for building selections:
//
//	dates, err := st.Dates(ctx, "Dune", loc)
//	books, err := st.Books(ctx, []string{"2024-01-01"}, loc)
//
// Select turns user-supplied dates into a selection over the known dates:
//
//	sel, err := st.Select(ctx, []string{"2024-01-01"}, "Dune", loc)
package store
