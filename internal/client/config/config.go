package config

import "time"

// Config holds runtime settings for the marine field client.
//
// Fields:
//   - APIBaseURL: scheme and host of the marine ERP.
//   - PageSize: page size for OData list reads.
//   - RequestTimeout: per-request HTTP timeout; zero means no timeout.
//   - CredentialsDB: path of the local sqlite file storing token/username.
type Config struct {
	APIBaseURL     string
	PageSize       int
	RequestTimeout time.Duration
	CredentialsDB  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "https://marineapitest.tersan.com.tr"
	c.PageSize = 100
	c.RequestTimeout = 0
	c.CredentialsDB = "credentials.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
