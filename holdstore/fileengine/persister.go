package fileengine

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	defaultFileMode = os.FileMode(0o644)
	defaultDirMode  = os.FileMode(0o755)
	tempFilePattern = ".holdqueue-*.tmp"
)

var (
	// ErrEmptyPath is returned when no snapshot path is supplied.
	ErrEmptyPath = errors.New("snapshot path must not be empty")

	// ErrReadingFileFailed is returned when the snapshot file exists but cannot be read.
	ErrReadingFileFailed = errors.New("reading snapshot file failed")

	// ErrWritingFileFailed is returned when the snapshot file could not be replaced atomically.
	ErrWritingFileFailed = errors.New("writing snapshot file failed")
)

// Persister stores the snapshot document in one file.
type Persister struct {
	path          string
	fileMode      os.FileMode
	syncDirectory bool
}

// Option defines a functional option for configuring Persister.
type Option func(*Persister) error

// WithFileMode sets the permission bits of the snapshot file.
func WithFileMode(mode os.FileMode) Option {
	return func(p *Persister) error {
		p.fileMode = mode
		return nil
	}
}

// WithoutDirectorySync skips the fsync of the parent directory after the rename.
// Some filesystems do not support syncing directories.
func WithoutDirectorySync() Option {
	return func(p *Persister) error {
		p.syncDirectory = false
		return nil
	}
}

// NewPersister creates a Persister for the given file path. Missing parent directories are created.
func NewPersister(path string, options ...Option) (*Persister, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	p := &Persister{
		path:          filepath.Clean(path),
		fileMode:      defaultFileMode,
		syncDirectory: true,
	}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	if err := os.MkdirAll(filepath.Dir(p.path), defaultDirMode); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return p, nil
}

// Path returns the snapshot file path.
func (p *Persister) Path() string {
	return p.path
}

// Load reads the snapshot file. It returns nil data and no error if the file does not exist yet.
func (p *Persister) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, errors.Join(ErrReadingFileFailed, err)
	}

	return data, nil
}

// Save replaces the snapshot file atomically.
func (p *Persister) Save(ctx context.Context, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := p.atomicWriteFile(document); err != nil {
		return errors.Join(ErrWritingFileFailed, err)
	}

	return nil
}

// atomicWriteFile writes to a temporary file in the same directory, syncs it, and renames it over the target.
func (p *Persister) atomicWriteFile(data []byte) error {
	dir := filepath.Dir(p.path)

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmp.Name()
	success := false

	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err = os.Chmod(tmpPath, p.fileMode); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err = os.Rename(tmpPath, p.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true

	if p.syncDirectory {
		return syncDir(dir)
	}

	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return fmt.Errorf("failed to open snapshot directory: %w", err)
	}
	defer func() { _ = d.Close() }()

	if err = d.Sync(); err != nil {
		return fmt.Errorf("failed to sync snapshot directory: %w", err)
	}

	return nil
}
