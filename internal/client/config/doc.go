// Package config loads runtime configuration for the game-site CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally seeded from a .env file
//     (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   root URL of the backend, e.g. http://192.168.42.41:8000
//	-t int      request timeout (seconds)
//
// Environment variables
//
//	GAMESITE_SERVER_URL       root URL of the backend
//	GAMESITE_REQUEST_TIMEOUT  request timeout as a Go duration ("10s")
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "10s" or integer nanoseconds:
//
//	{
//	  "server_root_url": "http://192.168.42.41:8000",
//	  "request_timeout": "10s"
//	}
package config
