// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Sources

Lowest to highest precedence:

  - built-in defaults
  - a .env file (LoadDotEnv; never overrides the real environment)
  - environment variables
  - CLI flags

# Flags and Environment Variables

	-i            INPUT_PATH      input CSV (data/shopping_trends.csv)
	-t            DATABASE_TYPE   postgres or sqlite (postgres)
	-d            DATABASE_URL    full connection string, overrides -db-*
	-db-host      DB_HOST         localhost
	-db-port      DB_PORT         5432
	-db-user      DB_USER         postgres
	-db-password  DB_PASSWORD
	-db-name      DB_NAME         customer_behavior
	-db-sslmode   DB_SSLMODE      disable
	-sqlite       SQLITE_PATH     customer_behaviour.db
	-xlsx         REPORT_XLSX     write the reports to a workbook
	-serve        SERVE           serve the reports over HTTP after loading
	-p            PORT            3318
	-log-level    LOG_LEVEL       debug, info, warn or error (info)
	-log-format   LOG_FORMAT      text or json (text)

# Validation

ParseFlags returns an error when:

  - the database type is not postgres or sqlite
  - a port is outside 1-65535
  - the Postgres host, user or database name is empty for postgres
  - the SQLite path is empty for sqlite
  - the log level or format is unknown

# Connecting

	conn, err := sql.Open(cfg.DriverName(), cfg.DSN())

DSN builds a URL-escaped postgres:// URL from the DB_* settings, or
returns the SQLite file path. DATABASE_URL, when set, is used as is.
*/
package cliparse
