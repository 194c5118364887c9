// Package postgresengine provides a holdstore.Persister that keeps the snapshot document in PostgreSQL.
//
// The document is stored as a single jsonb row, identified by a snapshot id, in a table that defaults to
// "hold_snapshots". Every Save is one INSERT ... ON CONFLICT DO UPDATE statement, so the replacement is
// atomic at the database level. A revision counter is bumped on every save.
//
// The persister can be created from a pgxpool.Pool, a database/sql DB (e.g. with the lib/pq driver),
// or a sqlx.DB. SQL is built with goqu using the postgres dialect.
//
// Expected schema (see EnsureSchema):
//
//	CREATE TABLE IF NOT EXISTS hold_snapshots (
//	    id         text PRIMARY KEY,
//	    document   jsonb NOT NULL,
//	    revision   bigint NOT NULL,
//	    updated_at timestamptz NOT NULL
//	);
package postgresengine
