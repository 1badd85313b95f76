// Package config loads the export configuration from flags, environment
// variables (EXCELPIVOT_*) and an optional config file, and validates it
// before any database or file work starts.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/microsoft/go-mssqldb/msdsn"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables, e.g. EXCELPIVOT_DSN.
const EnvPrefix = "EXCELPIVOT"

// Configuration keys. Flags use the same names.
const (
	KeyDriver         = "driver"
	KeyDSN            = "dsn"
	KeyQuery          = "query"
	KeyOutput         = "output"
	KeyPivot          = "pivot"
	KeyInclude        = "include"
	KeyExclude        = "exclude"
	KeyStrict         = "strict"
	KeySheet          = "sheet"
	KeyDateTimeFormat = "datetime-format"
	KeyLockTimeout    = "lock-timeout"
	KeyLogLevel       = "log-level"
	KeyLogFormat      = "log-format"
)

// Supported record source drivers.
const (
	DriverPostgres  = "postgres"
	DriverSQLite    = "sqlite"
	DriverSQLServer = "sqlserver"
)

// Drivers lists the supported drivers.
var Drivers = []string{DriverPostgres, DriverSQLite, DriverSQLServer}

// Config holds the export configuration.
type Config struct {
	// Driver selects the record source (postgres, sqlite, sqlserver).
	Driver string
	// DSN is the driver specific connection string (required).
	DSN string
	// Query is the SQL query producing the records (required).
	Query string
	// Output is the workbook path (required).
	Output string
	// PivotFile is an optional YAML file with pivot settings.
	PivotFile string
	// Include lists the columns to write, in order.
	Include []string
	// Exclude lists the columns to leave out.
	Exclude []string
	// Strict fails on unresolved pivot labels instead of skipping them.
	Strict bool
	// Sheet names the data sheet (default: DATA).
	Sheet string
	// DateTimeFormat is the number format of date-time cells.
	DateTimeFormat string
	// LockTimeout bounds the wait for the output file lock (default: 3s).
	LockTimeout time.Duration
	// Logging holds log settings.
	Logging LoggingConfig
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	// Level is debug, info, warn or error (default: info).
	Level string
	// Format is text or json (default: text).
	Format string
}

// New returns a viper instance reading EXCELPIVOT_* variables and the
// config file. An empty configFile looks for an optional excelpivot.*
// file in the working directory.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyDriver, DriverPostgres)
	v.SetDefault(KeySheet, "DATA")
	v.SetDefault(KeyLockTimeout, 3*time.Second)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("excelpivot")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// Load reads a Config from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Driver:         strings.ToLower(v.GetString(KeyDriver)),
		DSN:            v.GetString(KeyDSN),
		Query:          v.GetString(KeyQuery),
		Output:         v.GetString(KeyOutput),
		PivotFile:      v.GetString(KeyPivot),
		Include:        splitList(v.GetStringSlice(KeyInclude)),
		Exclude:        splitList(v.GetStringSlice(KeyExclude)),
		Strict:         v.GetBool(KeyStrict),
		Sheet:          v.GetString(KeySheet),
		DateTimeFormat: v.GetString(KeyDateTimeFormat),
		LockTimeout:    v.GetDuration(KeyLockTimeout),
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings and the driver specific DSN.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(Drivers, c.Driver) {
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", KeyDriver, strings.Join(Drivers, ", "), c.Driver))
	}
	if c.DSN == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyDSN))
	} else if c.Driver == DriverSQLServer {
		if _, err := msdsn.Parse(c.DSN); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", KeyDSN, err))
		}
	}
	if c.Query == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyQuery))
	}
	if c.Output == "" {
		errs = append(errs, fmt.Errorf("%s is required", KeyOutput))
	}
	if c.LockTimeout < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", KeyLockTimeout))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", KeyLogFormat, c.Logging.Format))
	}

	return errors.Join(errs...)
}

// splitList flattens comma separated entries, as set through environment
// variables, and drops blanks.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
