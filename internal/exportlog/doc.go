// Package exportlog keeps the history of presentation exports in SQLite.
//
// Each export attempt is one row: title, file name, slide count, outcome, and
// any error text. Slide content itself is never stored; sessions stay in
// memory only. The schema is versioned in schema_version; a mismatch asks the
// operator to delete the database rather than migrating it.
package exportlog
