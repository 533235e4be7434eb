package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	InputPath    string `envconfig:"INPUT_PATH" default:"data/shopping_trends.csv" validate:"required"`
	DatabaseType string `envconfig:"DATABASE_TYPE" default:"postgres" validate:"oneof=postgres sqlite"`
	DatabaseURL  string `envconfig:"DATABASE_URL"`
	DBHost       string `envconfig:"DB_HOST" default:"localhost" validate:"required_if=DatabaseType postgres"`
	DBPort       int    `envconfig:"DB_PORT" default:"5432" validate:"min=1,max=65535"`
	DBUser       string `envconfig:"DB_USER" default:"postgres" validate:"required_if=DatabaseType postgres"`
	DBPassword   string `envconfig:"DB_PASSWORD"`
	DBName       string `envconfig:"DB_NAME" default:"customer_behavior" validate:"required_if=DatabaseType postgres"`
	DBSSLMode    string `envconfig:"DB_SSLMODE" default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	SQLitePath   string `envconfig:"SQLITE_PATH" default:"customer_behaviour.db" validate:"required_if=DatabaseType sqlite"`
	ReportXLSX   string `envconfig:"REPORT_XLSX"`
	Serve        bool   `envconfig:"SERVE" default:"false"`
	Port         int    `envconfig:"PORT" default:"3318" validate:"min=1,max=65535"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat    string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadDotEnv loads variables from the given files (".env" by default)
// without overriding the process environment. Missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags reads the environment, then lets flags override it, and
// validates the result
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Environment first; its values become the flag defaults
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid environment: %w", err)
	}

	fs := flag.NewFlagSet("customer-behaviour", flag.ContinueOnError)

	// Input
	fs.StringVar(&cfg.InputPath, "i", cfg.InputPath, "Input CSV path")

	// Database
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (postgres or sqlite)")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL (overrides the -db-* flags)")
	fs.StringVar(&cfg.DBHost, "db-host", cfg.DBHost, "Postgres host")
	fs.IntVar(&cfg.DBPort, "db-port", cfg.DBPort, "Postgres port")
	fs.StringVar(&cfg.DBUser, "db-user", cfg.DBUser, "Postgres user")
	fs.StringVar(&cfg.DBPassword, "db-password", cfg.DBPassword, "Postgres password (prefer env)")
	fs.StringVar(&cfg.DBName, "db-name", cfg.DBName, "Postgres database name")
	fs.StringVar(&cfg.DBSSLMode, "db-sslmode", cfg.DBSSLMode, "Postgres sslmode")
	fs.StringVar(&cfg.SQLitePath, "sqlite", cfg.SQLitePath, "SQLite database file")

	// Output
	fs.StringVar(&cfg.ReportXLSX, "xlsx", cfg.ReportXLSX, "Write the reports to this .xlsx file")
	fs.BoolVar(&cfg.Serve, "serve", cfg.Serve, "Serve the reports over HTTP after loading")
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")

	// Logging
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// DriverName returns the database/sql driver for the configured type
func (c Config) DriverName() string {
	return c.DatabaseType
}

// DSN returns the data source name for the configured database
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseType == "sqlite" {
		return c.SQLitePath
	}

	u := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSSLMode}}.Encode(),
	}
	if c.DBPassword != "" {
		u.User = url.UserPassword(c.DBUser, c.DBPassword)
	} else {
		u.User = url.User(c.DBUser)
	}
	return u.String()
}
