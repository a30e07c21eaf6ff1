// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8080)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - DatabaseURL: connection string; a file path for sqlite
    (default: hub.db), required for postgres
  - UploadDir: directory for uploaded study materials (default: uploads)

# CLI Flags

	-p  Server port
	-t  Database type
	-d  Database URL
	-u  Upload directory

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_TYPE → -t
	DATABASE_URL  → -d
	UPLOAD_DIR    → -u

CLI flags take precedence over environment variables, which take
precedence over the defaults.

# Validation

ParseFlags returns an error if:

  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_TYPE is postgres and no DATABASE_URL is provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, store, cfg)
*/
package cliparse
