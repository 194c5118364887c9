package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Supported storage backends.
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Supported PostgreSQL drivers for the postgres backend.
const (
	DriverPGX  = "pgx"
	DriverSQL  = "sql"
	DriverSQLX = "sqlx"
)

// Supported contextual loggers when telemetry is enabled.
const (
	OTelLoggerBridge = "bridge"
	OTelLoggerDirect = "direct"
)

// Configuration keys.
const (
	KeySnapshotPath     = "snapshot_path"
	KeyBackend          = "backend"
	KeyPostgresDSN      = "postgres_dsn"
	KeyPostgresDriver   = "postgres_driver"
	KeyPostgresTable    = "postgres_table"
	KeyLogLevel         = "log_level"
	KeyOTelEnabled      = "otel_enabled"
	KeyOTelLogger       = "otel_logger"
	KeyRetryMaxAttempts = "retry_max_attempts"
)

const (
	envPrefix           = "HOLDQUEUE"
	configFileName      = "holdqueue"
	configFileType      = "yaml"
	defaultSnapshotPath = "data/holdqueue.json"
	defaultTableName    = "hold_snapshots"
)

var (
	ErrUnknownBackend            = errors.New("unknown backend")
	ErrUnknownPostgresDriver     = errors.New("unknown postgres driver")
	ErrMissingPostgresDSN        = errors.New("postgres_dsn is required for the postgres backend")
	ErrInvalidLogLevel           = errors.New("invalid log level")
	ErrUnknownOTelLogger         = errors.New("unknown otel logger")
	ErrInvalidRetryMaxAttempts   = errors.New("retry_max_attempts must be at least 1")
	ErrResolvingExecutableFailed = errors.New("resolving the executable directory failed")
	ErrReadingConfigFileFailed   = errors.New("reading the config file failed")
	ErrDecodingConfigFailed      = errors.New("decoding the configuration failed")
)

// Config is the resolved runtime configuration.
type Config struct {
	SnapshotPath     string `mapstructure:"snapshot_path"`
	Backend          string `mapstructure:"backend"`
	PostgresDSN      string `mapstructure:"postgres_dsn"`
	PostgresDriver   string `mapstructure:"postgres_driver"`
	PostgresTable    string `mapstructure:"postgres_table"`
	LogLevel         string `mapstructure:"log_level"`
	OTelEnabled      bool   `mapstructure:"otel_enabled"`
	OTelLogger       string `mapstructure:"otel_logger"`
	RetryMaxAttempts int    `mapstructure:"retry_max_attempts"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySnapshotPath, defaultSnapshotPath)
	v.SetDefault(KeyBackend, BackendFile)
	v.SetDefault(KeyPostgresDSN, "")
	v.SetDefault(KeyPostgresDriver, DriverPGX)
	v.SetDefault(KeyPostgresTable, defaultTableName)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyOTelEnabled, false)
	v.SetDefault(KeyOTelLogger, OTelLoggerBridge)
	v.SetDefault(KeyRetryMaxAttempts, 1)
}

// NewViper returns a viper instance with defaults, environment binding and the
// config file search path (exeDir) registered.
func NewViper(exeDir string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(exeDir)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the optional config file, decodes all values and validates them.
// A missing config file is not an error.
func Load(v *viper.Viper, exeDir string) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, errors.Join(ErrReadingConfigFileFailed, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Join(ErrDecodingConfigFailed, err)
	}

	cfg.SnapshotPath = ResolveSnapshotPath(exeDir, cfg.SnapshotPath)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.PostgresDriver = strings.ToLower(strings.TrimSpace(cfg.PostgresDriver))
	cfg.OTelLogger = strings.ToLower(strings.TrimSpace(cfg.OTelLogger))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the decoded values for consistency.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile:
	case BackendPostgres:
		if strings.TrimSpace(c.PostgresDSN) == "" {
			return ErrMissingPostgresDSN
		}

		switch c.PostgresDriver {
		case DriverPGX, DriverSQL, DriverSQLX:
		default:
			return fmt.Errorf("%w: %q", ErrUnknownPostgresDriver, c.PostgresDriver)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	switch c.OTelLogger {
	case OTelLoggerBridge, OTelLoggerDirect:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOTelLogger, c.OTelLogger)
	}

	if c.RetryMaxAttempts < 1 {
		return ErrInvalidRetryMaxAttempts
	}

	return nil
}

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}

// ExecutableDir returns the directory of the running executable with symlinks resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Join(ErrResolvingExecutableFailed, err)
	}

	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", errors.Join(ErrResolvingExecutableFailed, err)
	}

	return filepath.Dir(resolved), nil
}

// ResolveSnapshotPath anchors a relative (or empty) snapshot path at exeDir.
func ResolveSnapshotPath(exeDir, configured string) string {
	configured = strings.TrimSpace(configured)
	if configured == "" {
		configured = defaultSnapshotPath
	}

	if filepath.IsAbs(configured) {
		return filepath.Clean(configured)
	}

	return filepath.Join(exeDir, configured)
}
