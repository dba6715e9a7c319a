// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default: file:ippon.db for sqlite, required for postgres)
  - JudgeNames: Five display names, seeded on first start
  - CORSOrigins: Origins allowed to call /api (any when empty)
  - EnvFile: .env file loaded before reading the environment

# CLI Flags

	-p       Server port
	-d       Database URL
	-t       Database type
	-judges  Judge names, comma separated
	-cors    CORS origins, comma separated
	-env     Path to .env file (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t
	JUDGE_NAMES   → -judges
	CORS_ORIGINS  → -cors

CLI flags take precedence over environment variables, and variables already
in the environment take precedence over the .env file. A missing .env file
is not an error.

# Validation

ParseFlags returns an error when:

  - the port is not a number in 1-65535
  - the database type is unknown
  - postgres is selected without a DATABASE_URL
  - JUDGE_NAMES does not list exactly five names
*/
package cliparse
