package persistence

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrInjectedSaveFailure is returned by MemoryPersister.Save while failures are injected.
var ErrInjectedSaveFailure = errors.New("injected save failure")

// MemoryPersister keeps the last saved document in memory.
type MemoryPersister struct {
	document      []byte
	saveCount     int
	failNextSaves int
	loadErr       error
	mu            sync.Mutex
}

// NewMemoryPersister creates an empty MemoryPersister.
func NewMemoryPersister() *MemoryPersister {
	return &MemoryPersister{}
}

// NewMemoryPersisterWithDocument creates a MemoryPersister that already holds a document.
func NewMemoryPersisterWithDocument(document []byte) *MemoryPersister {
	return &MemoryPersister{document: slices.Clone(document)}
}

// Load implements holdstore.Persister.
func (p *MemoryPersister) Load(_ context.Context) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loadErr != nil {
		return nil, p.loadErr
	}

	return slices.Clone(p.document), nil
}

// Save implements holdstore.Persister.
func (p *MemoryPersister) Save(ctx context.Context, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failNextSaves > 0 {
		p.failNextSaves--
		return ErrInjectedSaveFailure
	}

	p.document = slices.Clone(document)
	p.saveCount++

	return nil
}

// FailNextSaves makes the next n calls to Save fail.
func (p *MemoryPersister) FailNextSaves(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failNextSaves = n
}

// FailLoad makes every call to Load return err.
func (p *MemoryPersister) FailLoad(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadErr = err
}

// Document returns a copy of the last saved document.
func (p *MemoryPersister) Document() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()

	return slices.Clone(p.document)
}

// SaveCount returns the number of successful saves.
func (p *MemoryPersister) SaveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.saveCount
}
