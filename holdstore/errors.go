package holdstore

import "errors"

var (
	// ErrNilPersister is returned when a nil Persister is supplied to NewStore.
	ErrNilPersister = errors.New("persister must not be nil")

	// ErrLoadingSnapshotFailed is returned when the persisted snapshot could not be read.
	ErrLoadingSnapshotFailed = errors.New("loading snapshot failed")

	// ErrInvalidSnapshotJSON is returned when snapshot JSON data is malformed or invalid.
	ErrInvalidSnapshotJSON = errors.New("snapshot json is not valid")

	// ErrInvalidSnapshot is returned when a well-formed snapshot violates the domain invariants.
	ErrInvalidSnapshot = errors.New("snapshot is not consistent")

	// ErrEncodingSnapshotFailed is returned when the state could not be serialized.
	ErrEncodingSnapshotFailed = errors.New("encoding snapshot failed")

	// ErrPersistingSnapshotFailed is returned when the snapshot could not be flushed durably.
	// The transaction that produced it was discarded, the committed state is unchanged.
	ErrPersistingSnapshotFailed = errors.New("persisting snapshot failed")

	// ErrNilTransactionFunc is returned when RunInTransaction or View is called without a function.
	ErrNilTransactionFunc = errors.New("transaction function must not be nil")
)
