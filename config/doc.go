// Package config loads the holdqueue runtime configuration and builds the
// PostgreSQL connections used by the postgres backend.
//
// Values come from (lowest to highest precedence) built-in defaults, an optional
// holdqueue.yaml next to the executable, and HOLDQUEUE_* environment variables.
// The snapshot path defaults to data/holdqueue.json below the executable's directory;
// relative paths are resolved against that directory as well.
package config
