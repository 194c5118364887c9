package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"

	"github.com/AntonStoeckl/holdqueue/config"
	"github.com/AntonStoeckl/holdqueue/holdstore"
	"github.com/AntonStoeckl/holdqueue/holdstore/fileengine"
	"github.com/AntonStoeckl/holdqueue/holdstore/oteladapters"
	"github.com/AntonStoeckl/holdqueue/holdstore/postgresengine"
	"github.com/AntonStoeckl/holdqueue/service"
	"github.com/AntonStoeckl/holdqueue/shell"
)

// runtime is everything one CLI invocation needs, plus the cleanups to run afterwards.
type runtime struct {
	cfg     config.Config
	logger  *slog.Logger
	service *service.Service
	closers []func() error
}

func newRuntime(ctx context.Context, cfg config.Config, logOutput io.Writer) (*runtime, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	rt := &runtime{
		cfg:    cfg,
		logger: slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{Level: level})),
	}

	storeOptions := []holdstore.Option{holdstore.WithLogger(rt.logger)}
	serviceOptions := []service.Option{
		service.WithLogger(rt.logger),
		service.WithRetryOptions(shell.WithMaxAttempts(cfg.RetryMaxAttempts)),
	}

	if cfg.OTelEnabled {
		tel, telErr := setupTelemetry(ctx)
		if telErr != nil {
			return nil, telErr
		}
		rt.closers = append(rt.closers, tel.shutdown)

		contextualLogger := newContextualLogger(cfg.OTelLogger, global.GetLoggerProvider())
		metrics := oteladapters.NewMetricsCollector(otel.Meter(instrumentationName))
		tracing := oteladapters.NewTracingCollector(otel.Tracer(instrumentationName))

		storeOptions = append(storeOptions,
			holdstore.WithContextualLogger(contextualLogger),
			holdstore.WithMetrics(metrics),
			holdstore.WithTracing(tracing),
		)
		serviceOptions = append(serviceOptions,
			service.WithContextualLogger(contextualLogger),
			service.WithMetrics(metrics),
			service.WithTracing(tracing),
		)
	}

	persister, err := rt.newPersister(ctx)
	if err != nil {
		return nil, errors.Join(err, rt.close())
	}

	store, err := holdstore.NewStore(ctx, persister, storeOptions...)
	if err != nil {
		return nil, errors.Join(err, rt.close())
	}

	svc, err := service.NewService(store, serviceOptions...)
	if err != nil {
		return nil, errors.Join(err, rt.close())
	}
	rt.service = svc

	return rt, nil
}

// newContextualLogger picks how store and service logs reach the LoggerProvider:
// through the slog bridge or as records emitted directly.
func newContextualLogger(kind string, provider log.LoggerProvider) holdstore.ContextualLogger {
	if kind == config.OTelLoggerDirect {
		return oteladapters.NewOTelLogger(provider.Logger(instrumentationName))
	}

	return oteladapters.NewSlogBridgeLoggerFromProvider(instrumentationName, provider)
}

func (rt *runtime) newPersister(ctx context.Context) (holdstore.Persister, error) {
	if rt.cfg.Backend == config.BackendFile {
		rt.logger.Debug("using file backend", "path", rt.cfg.SnapshotPath)
		persister, err := fileengine.NewPersister(rt.cfg.SnapshotPath)
		if err != nil {
			return nil, err
		}

		return persister, nil
	}

	options := []postgresengine.Option{
		postgresengine.WithTableName(rt.cfg.PostgresTable),
		postgresengine.WithLogger(rt.logger),
	}

	var (
		persister *postgresengine.Persister
		err       error
	)

	switch rt.cfg.PostgresDriver {
	case config.DriverSQL:
		db, openErr := config.NewPostgresSQLDB(ctx, rt.cfg.PostgresDSN)
		if openErr != nil {
			return nil, openErr
		}
		rt.closers = append(rt.closers, db.Close)
		persister, err = postgresengine.NewPersisterFromSQLDB(db, options...)

	case config.DriverSQLX:
		db, openErr := config.NewPostgresSQLXDB(ctx, rt.cfg.PostgresDSN)
		if openErr != nil {
			return nil, openErr
		}
		rt.closers = append(rt.closers, db.Close)
		persister, err = postgresengine.NewPersisterFromSQLX(db, options...)

	default:
		pool, openErr := config.NewPostgresPGXPool(ctx, rt.cfg.PostgresDSN)
		if openErr != nil {
			return nil, openErr
		}
		rt.closers = append(rt.closers, func() error {
			pool.Close()
			return nil
		})
		persister, err = postgresengine.NewPersisterFromPGXPool(pool, options...)
	}

	if err != nil {
		return nil, err
	}

	rt.logger.Debug("using postgres backend", "driver", rt.cfg.PostgresDriver, "table", rt.cfg.PostgresTable)

	if schemaErr := persister.EnsureSchema(ctx); schemaErr != nil {
		return nil, schemaErr
	}

	return persister, nil
}

// close runs the cleanups in reverse order of registration.
func (rt *runtime) close() error {
	var err error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		err = errors.Join(err, rt.closers[i]())
	}
	rt.closers = nil

	return err
}
