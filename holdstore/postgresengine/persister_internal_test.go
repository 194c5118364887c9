package postgresengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPersister(t *testing.T, options ...Option) *Persister {
	t.Helper()

	p, err := newPersister(nil, options...)
	require.NoError(t, err)

	return p
}

func Test_buildSaveQuery(t *testing.T) {
	// arrange
	p := newTestPersister(t)

	// act
	sqlQuery, err := p.buildSaveQuery([]byte(`{"title":"it's"}`))

	// assert
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `INSERT INTO "hold_snapshots"`)
	assert.Contains(t, sqlQuery, `'{"title":"it''s"}'::jsonb`, "the document is escaped as a string literal")
	assert.Contains(t, sqlQuery, `'default'`)
	assert.Contains(t, sqlQuery, "ON CONFLICT")
	assert.Contains(t, sqlQuery, "EXCLUDED.document")
	assert.Contains(t, sqlQuery, `"hold_snapshots"."revision" + 1`)
}

func Test_buildLoadQuery(t *testing.T) {
	// arrange
	p := newTestPersister(t, WithTableName("snapshots"), WithSnapshotID("branch-7"))

	// act
	sqlQuery, err := p.buildLoadQuery()

	// assert
	require.NoError(t, err)
	assert.Contains(t, sqlQuery, `"document"::text`)
	assert.Contains(t, sqlQuery, `FROM "snapshots"`)
	assert.Contains(t, sqlQuery, `"id" = 'branch-7'`)
}

func Test_buildCreateTableStatement(t *testing.T) {
	p := newTestPersister(t, WithTableName(`odd"name`))

	statement := p.buildCreateTableStatement()

	assert.Contains(t, statement, `CREATE TABLE IF NOT EXISTS "odd""name"`)
	assert.Contains(t, statement, "document jsonb NOT NULL")
}
