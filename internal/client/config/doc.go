// Package config loads runtime configuration for the marine field client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the marine ERP
//	-p int      list page size
//	-t int      request timeout (seconds, 0 for none)
//	-d string   path of the local credentials database
//
// # JSON schema
//
//	{
//	  "api_base_url": "https://marineapitest.tersan.com.tr",
//	  "page_size": 100,
//	  "request_timeout_sec": 0,
//	  "credentials_db": "credentials.db"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the client
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
