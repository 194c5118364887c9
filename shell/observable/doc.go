// Package observable provides wrappers that instrument command and query handlers
// with metrics, tracing, and logging while keeping the handlers free of infrastructure concerns.
//
// The wrappers are applied externally at wiring time:
//
//	coreHandler := placehold.NewCommandHandler(store)
//
//	observableHandler, err := observable.NewCommandWrapper[placehold.Command, placehold.Result](
//		coreHandler,
//		observable.WithCommandMetrics[placehold.Command, placehold.Result](metricsCollector),
//		observable.WithCommandTracing[placehold.Command, placehold.Result](tracingCollector),
//	)
//
// Errors are classified with shell.ClassifyError, so business rejections (validation, not found,
// forbidden, conflict) are recorded apart from infrastructure failures.
package observable
