// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

	-p, --port            PORT            Server port (default 8088)
	-d, --database-url    DATABASE_URL    Database URL (required)
	-t, --database-type   DATABASE_TYPE   postgres or sqlite (default postgres)
	--max-conns           DB_MAX_CONNS    Pool size (default 4)
	--query-timeout       QUERY_TIMEOUT   Per storage call (default 5s)
	--report-interval     REPORT_INTERVAL Recent-ranking log interval (default off)
	-v, --verbose         VERBOSE         Debug logging

CLI flags take precedence over environment variables. main loads a .env
file first when one exists.
*/
package cliparse
