// Package config loads runtime configuration for the shelterctl CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config; ".yaml"/".yml"
//     files are read as YAML, anything else as JSON.
//  3. A ".env" file in the working directory, if present, followed by the
//     process environment.
//  4. Command-line flags.
//
// The base URL and the origin are one setting: within a source an explicit
// base URL beats the origin, and a later source's origin replaces an
// earlier source's base URL. The resulting base URL is the explicit one,
// otherwise the origin plus "/api/v1", otherwise
// http://localhost:8080/api/v1.
//
// Supported flags
//
//	-a string   API base URL
//	-t int      per-request timeout (seconds)
//	-l string   log level (debug, info, warn, error)
//	-s string   session database path
//
// Environment
//
//	ANIMALSYS_API_BASE_URL, ANIMALSYS_ORIGIN, ANIMALSYS_REQUEST_TIMEOUT,
//	ANIMALSYS_AUTH_FAILURE_STATUS, ANIMALSYS_SESSION_DB,
//	ANIMALSYS_SESSION_SECRET, ANIMALSYS_LOG_LEVEL, ANIMALSYS_LOG_FORMAT,
//	ANIMALSYS_METRICS_ADDR, ANIMALSYS_S3_BUCKET, ANIMALSYS_S3_REGION,
//	ANIMALSYS_S3_ENDPOINT, ANIMALSYS_S3_ACCESS_KEY, ANIMALSYS_S3_SECRET_KEY,
//	ANIMALSYS_S3_PUBLIC_URL, ANIMALSYS_S3_PATH_STYLE
//
// # File schema
//
// Durations are strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://shelter.example/api/v1",
//	  "request_timeout": "30s",
//	  "auth_failure_status": 401,
//	  "session_db": "/home/me/.config/animalsys/session.db",
//	  "log_level": "info",
//	  "s3": {"bucket": "animal-photos", "region": "eu-central-1"}
//	}
package config
