package postgresengine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/holdqueue/holdstore/postgresengine/internal/adapters"
)

const (
	defaultTableName          = "hold_snapshots"
	defaultSnapshotID         = "default"
	dialectPostgres           = "postgres"
	colID                     = "id"
	colDocument               = "document"
	colRevision               = "revision"
	colUpdatedAt              = "updated_at"
	castJsonb                 = "?::jsonb"
	castText                  = "?::text"
	sqlNow                    = "NOW()"
	logMsgBuildQueryFailed    = "failed to build snapshot query"
	logMsgDBQueryFailed       = "database query execution failed"
	logMsgDBExecFailed        = "database execution failed during snapshot save"
	logMsgScanRowFailed       = "failed to scan database row"
	logMsgCloseRowsFailed     = "failed to close database rows"
	logMsgSnapshotLoaded      = "snapshot loaded"
	logMsgSnapshotSaved       = "snapshot saved"
	logMsgSnapshotNotFound    = "snapshot not found"
	logMsgSchemaEnsured       = "snapshot schema ensured"
	logMsgSQLExecuted         = "executed sql for: "
	logAttrError              = "error"
	logAttrQuery              = "query"
	logAttrDurationMS         = "duration_ms"
	logAttrSnapshotID         = "snapshot_id"
	logAttrTableName          = "table_name"
	logAttrDocumentBytes      = "document_bytes"
	logActionLoad             = "load"
	logActionSave             = "save"
	logActionEnsureSchema     = "ensure_schema"
	createTableStatementShape = `CREATE TABLE IF NOT EXISTS %s (
	id text PRIMARY KEY,
	document jsonb NOT NULL,
	revision bigint NOT NULL,
	updated_at timestamptz NOT NULL
)`
)

var (
	// ErrNilDatabaseConnection is returned when a nil database connection is supplied.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrEmptyTableName is returned when an empty table name is supplied.
	ErrEmptyTableName = errors.New("table name must not be empty")

	// ErrEmptySnapshotID is returned when an empty snapshot id is supplied.
	ErrEmptySnapshotID = errors.New("snapshot id must not be empty")

	// ErrBuildingQueryFailed is returned when goqu fails to build a query.
	ErrBuildingQueryFailed = errors.New("building query failed")

	// ErrQueryingSnapshotFailed is returned when reading the snapshot row fails.
	ErrQueryingSnapshotFailed = errors.New("querying snapshot failed")

	// ErrScanningDBRowFailed is returned when the snapshot row cannot be scanned.
	ErrScanningDBRowFailed = errors.New("scanning db row failed")

	// ErrSavingSnapshotFailed is returned when the snapshot upsert fails.
	ErrSavingSnapshotFailed = errors.New("saving snapshot failed")

	// ErrCreatingSchemaFailed is returned when the snapshot table cannot be created.
	ErrCreatingSchemaFailed = errors.New("creating snapshot schema failed")
)

// Logger interface for SQL query logging, operational information, warnings, and error reporting.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Persister stores the snapshot document in one row of a Postgres table.
type Persister struct {
	db         adapters.DBAdapter
	tableName  string
	snapshotID string
	logger     Logger
}

// Option defines a functional option for configuring Persister.
type Option func(*Persister) error

// WithTableName sets the table name for the Persister.
func WithTableName(tableName string) Option {
	return func(p *Persister) error {
		if tableName == "" {
			return ErrEmptyTableName
		}

		p.tableName = tableName

		return nil
	}
}

// WithSnapshotID sets the row id, which allows several independent stores to share one table.
func WithSnapshotID(snapshotID string) Option {
	return func(p *Persister) error {
		if snapshotID == "" {
			return ErrEmptySnapshotID
		}

		p.snapshotID = snapshotID

		return nil
	}
}

// WithLogger sets the logger for the Persister.
// The logger will receive messages at different levels based on the logger's configured level:
//
// Debug level: SQL statements with execution timing (development use)
// Info level: snapshot loads and saves with document sizes (production-safe)
// Warn level: non-critical issues like cleanup failures
// Error level: critical failures that cause operation failures.
func WithLogger(logger Logger) Option {
	return func(p *Persister) error {
		p.logger = logger
		return nil
	}
}

// NewPersisterFromPGXPool creates a new Persister using a pgx Pool with optional configuration.
func NewPersisterFromPGXPool(db *pgxpool.Pool, options ...Option) (*Persister, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPersister(adapters.NewPGXAdapter(db), options...)
}

// NewPersisterFromSQLDB creates a new Persister using a sql.DB with optional configuration.
func NewPersisterFromSQLDB(db *sql.DB, options ...Option) (*Persister, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPersister(adapters.NewSQLAdapter(db), options...)
}

// NewPersisterFromSQLX creates a new Persister using a sqlx.DB with optional configuration.
func NewPersisterFromSQLX(db *sqlx.DB, options ...Option) (*Persister, error) {
	if db == nil {
		return nil, ErrNilDatabaseConnection
	}

	return newPersister(adapters.NewSQLXAdapter(db), options...)
}

func newPersister(db adapters.DBAdapter, options ...Option) (*Persister, error) {
	p := &Persister{
		db:         db,
		tableName:  defaultTableName,
		snapshotID: defaultSnapshotID,
	}

	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (p *Persister) EnsureSchema(ctx context.Context) error {
	statement := p.buildCreateTableStatement()

	start := time.Now()
	_, err := p.db.Exec(ctx, statement)
	p.logQueryWithDuration(statement, logActionEnsureSchema, time.Since(start))

	if err != nil {
		p.logError(logMsgDBExecFailed, err, logAttrQuery, statement)
		return errors.Join(ErrCreatingSchemaFailed, err)
	}

	p.logOperation(logMsgSchemaEnsured, logAttrTableName, p.tableName)

	return nil
}

// Load reads the snapshot document. It returns nil data and no error if no row exists yet.
func (p *Persister) Load(ctx context.Context) ([]byte, error) {
	sqlQuery, err := p.buildLoadQuery()
	if err != nil {
		p.logError(logMsgBuildQueryFailed, err)
		return nil, err
	}

	start := time.Now()
	rows, err := p.db.Query(ctx, sqlQuery)
	p.logQueryWithDuration(sqlQuery, logActionLoad, time.Since(start))

	if err != nil {
		p.logError(logMsgDBQueryFailed, err, logAttrQuery, sqlQuery)
		return nil, errors.Join(ErrQueryingSnapshotFailed, err)
	}
	defer p.closeRows(rows)

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, errors.Join(ErrQueryingSnapshotFailed, err)
		}

		p.logOperation(logMsgSnapshotNotFound, logAttrSnapshotID, p.snapshotID)

		return nil, nil
	}

	var document []byte
	if err = rows.Scan(&document); err != nil {
		p.logError(logMsgScanRowFailed, err)
		return nil, errors.Join(ErrScanningDBRowFailed, err)
	}

	p.logOperation(logMsgSnapshotLoaded,
		logAttrSnapshotID, p.snapshotID,
		logAttrDocumentBytes, len(document),
		logAttrDurationMS, toMilliseconds(time.Since(start)),
	)

	return document, nil
}

// Save upserts the snapshot document in a single statement.
func (p *Persister) Save(ctx context.Context, document []byte) error {
	sqlQuery, err := p.buildSaveQuery(document)
	if err != nil {
		p.logError(logMsgBuildQueryFailed, err)
		return err
	}

	start := time.Now()
	_, err = p.db.Exec(ctx, sqlQuery)
	duration := time.Since(start)
	p.logQueryWithDuration(sqlQuery, logActionSave, duration)

	if err != nil {
		p.logError(logMsgDBExecFailed, err, logAttrSnapshotID, p.snapshotID)
		return errors.Join(ErrSavingSnapshotFailed, err)
	}

	p.logOperation(logMsgSnapshotSaved,
		logAttrSnapshotID, p.snapshotID,
		logAttrDocumentBytes, len(document),
		logAttrDurationMS, toMilliseconds(duration),
	)

	return nil
}

func (p *Persister) buildCreateTableStatement() string {
	return fmt.Sprintf(createTableStatementShape, pq.QuoteIdentifier(p.tableName))
}

func (p *Persister) buildLoadQuery() (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(p.tableName).
		Select(goqu.L(castText, goqu.C(colDocument))).
		Where(goqu.C(colID).Eq(p.snapshotID))

	sqlQuery, _, toSQLErr := selectStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

func (p *Persister) buildSaveQuery(document []byte) (string, error) {
	insertStmt := goqu.Dialect(dialectPostgres).
		Insert(p.tableName).
		Rows(goqu.Record{
			colID:        p.snapshotID,
			colDocument:  goqu.L(castJsonb, string(document)),
			colRevision:  1,
			colUpdatedAt: goqu.L(sqlNow),
		}).
		OnConflict(goqu.DoUpdate(colID, goqu.Record{
			colDocument:  goqu.L("EXCLUDED." + colDocument),
			colRevision:  goqu.L("? + 1", goqu.T(p.tableName).Col(colRevision)),
			colUpdatedAt: goqu.L(sqlNow),
		}))

	sqlQuery, _, toSQLErr := insertStmt.ToSQL()
	if toSQLErr != nil {
		return "", errors.Join(ErrBuildingQueryFailed, toSQLErr)
	}

	return sqlQuery, nil
}

// closeRows safely closes database rows and logs any errors.
func (p *Persister) closeRows(rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil && p.logger != nil {
		p.logger.Warn(logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// logQueryWithDuration logs SQL queries with execution time at debug level if the logger is configured.
func (p *Persister) logQueryWithDuration(sqlQuery string, action string, duration time.Duration) {
	if p.logger != nil {
		p.logger.Debug(logMsgSQLExecuted+action, logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery)
	}
}

// logOperation logs operational information at info level if the logger is configured.
func (p *Persister) logOperation(message string, args ...any) {
	if p.logger != nil {
		p.logger.Info(message, args...)
	}
}

// logError logs error information at the error level if the logger is configured.
func (p *Persister) logError(message string, err error, args ...any) {
	if p.logger != nil {
		allArgs := []any{logAttrError, err.Error()}
		allArgs = append(allArgs, args...)
		p.logger.Error(message, allArgs...)
	}
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}
