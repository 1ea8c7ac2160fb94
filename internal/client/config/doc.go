// Package config loads runtime configuration for the gophdocs client.
//
// Sources, in increasing precedence:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. Command-line flags (see parseFlags).
//
// Example JSON file:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080/ru/data/v3/testmethods/docs",
//	  "database_path": "gophdocs.db",
//	  "request_timeout": "10s",
//	  "notice_ttl": "3s",
//	  "page_size": 25,
//	  "log_level": "debug",
//	  "log_file": "gophdocs.log"
//	}
//
// Durations accept strings such as "3s" or integer nanoseconds.
package config
