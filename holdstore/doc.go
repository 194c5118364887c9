// Package holdstore provides the transactional store that owns the authoritative hold queue state.
//
// All mutating operations run through Store.RunInTransaction. Transactions are serialized by a single
// mutex: each one works on a private copy of the last committed state, and the copy only becomes the
// committed state after the full snapshot document was persisted. If persisting fails, the copy is
// discarded and the caller receives an error wrapping ErrPersistingSnapshotFailed.
//
// Reads go through Store.View. They never take the writer lock and always observe the last committed
// state, never a partially applied transaction.
//
// Where the snapshot lives is decided by the Persister. The fileengine package writes a JSON file
// atomically (temp file, fsync, rename), the postgresengine package upserts a single row.
//
// Common usage pattern:
//
//	persister, err := fileengine.NewPersister(path)
//	if err != nil {
//		// handle error
//	}
//
//	store, err := holdstore.NewStore(ctx, persister, holdstore.WithLogger(logger))
//	if err != nil {
//		// handle error
//	}
//
//	err = store.RunInTransaction(ctx, func(tx *core.State) error {
//		tx.AddItem("Dune", 2)
//		return nil
//	})
package holdstore
