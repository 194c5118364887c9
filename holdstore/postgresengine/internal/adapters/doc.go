// Package adapters hides the differences between pgxpool, database/sql, and sqlx behind one small
// interface, so the Postgres persister is written once against DBAdapter.
package adapters
