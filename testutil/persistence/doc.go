// Package persistence provides an in-memory holdstore.Persister with failure injection for tests.
package persistence
