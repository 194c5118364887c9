// Package fileengine provides a holdstore.Persister that keeps the snapshot document in a single JSON file.
//
// Every Save writes the document to a temporary file in the target directory, flushes it to disk, and
// renames it over the target. A crash at any point leaves either the old or the new document in place,
// never a truncated one.
package fileengine
