package fileengine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/holdqueue/holdstore/fileengine"
)

func Test_NewPersister_EmptyPath(t *testing.T) {
	_, err := fileengine.NewPersister("")

	assert.ErrorIs(t, err, fileengine.ErrEmptyPath)
}

func Test_NewPersister_CreatesParentDirectories(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "nested", "data", "holdqueue.json")

	// act
	p, err := fileengine.NewPersister(path)

	// assert
	require.NoError(t, err)
	assert.Equal(t, path, p.Path())
	assert.DirExists(t, filepath.Dir(path))
}

func Test_Persister_Load_MissingFile(t *testing.T) {
	// arrange
	p, err := fileengine.NewPersister(filepath.Join(t.TempDir(), "holdqueue.json"))
	require.NoError(t, err)

	// act
	data, err := p.Load(context.Background())

	// assert
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func Test_Persister_SaveThenLoad(t *testing.T) {
	// arrange
	dir := t.TempDir()
	p, err := fileengine.NewPersister(filepath.Join(dir, "holdqueue.json"))
	require.NoError(t, err)

	// act
	require.NoError(t, p.Save(context.Background(), []byte(`{"v":1}`)))
	require.NoError(t, p.Save(context.Background(), []byte(`{"v":2}`)))
	data, err := p.Load(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func Test_Persister_SaveThenLoad_WithoutDirectorySync(t *testing.T) {
	// arrange
	dir := t.TempDir()
	p, err := fileengine.NewPersister(filepath.Join(dir, "holdqueue.json"), fileengine.WithoutDirectorySync())
	require.NoError(t, err)

	// act
	require.NoError(t, p.Save(context.Background(), []byte(`{"v":1}`)))
	data, err := p.Load(context.Background())

	// assert
	require.NoError(t, err)
	assert.Equal(t, `{"v":1}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files are left behind")
}

func Test_Persister_Save_AppliesFileMode(t *testing.T) {
	// arrange
	path := filepath.Join(t.TempDir(), "holdqueue.json")
	p, err := fileengine.NewPersister(path, fileengine.WithFileMode(0o600))
	require.NoError(t, err)

	// act
	require.NoError(t, p.Save(context.Background(), []byte(`{}`)))

	// assert
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func Test_Persister_Save_FailedRenameLeavesNoTempFile(t *testing.T) {
	// arrange
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(filepath.Join(blocked, "child"), 0o755))

	broken, err := fileengine.NewPersister(blocked)
	require.NoError(t, err)

	// act
	saveErr := broken.Save(context.Background(), []byte(`{}`))

	// assert
	assert.ErrorIs(t, saveErr, fileengine.ErrWritingFileFailed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "the temp file is removed after a failed rename")
	assert.DirExists(t, filepath.Join(blocked, "child"))
}

func Test_Persister_Save_CanceledContext(t *testing.T) {
	// arrange
	p, err := fileengine.NewPersister(filepath.Join(t.TempDir(), "holdqueue.json"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	err = p.Save(ctx, []byte(`{}`))

	// assert
	assert.ErrorIs(t, err, context.Canceled)
}
