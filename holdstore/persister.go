package holdstore

import "context"

// Persister stores and retrieves the complete snapshot document.
//
// Save must be atomic: after it returns nil the new document is durable, after it returns an error
// the previously saved document is still intact. Load returns nil data and a nil error when nothing
// was saved yet.
type Persister interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, document []byte) error
}
