// Package config handles configuration for the development backend,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// Config holds runtime settings for the development backend.
//
// Fields:
//   - Address: bind address of the HTTP listener.
//   - BasePath: path prefix of every API route.
//   - SecretKey: HMAC secret for signing JWTs (HS256). A random one is
//     generated at start-up when empty, so tokens die with the process.
//   - TokenTTL: token lifetime.
//   - Password: the shared password every userN account logs in with.
//   - LogLevel: log verbosity.
//   - DatabaseDSN: PostgreSQL connection string. Documents are kept in memory
//     when empty.
type Config struct {
	Address   string
	BasePath  string
	SecretKey string
	TokenTTL  time.Duration
	Password  string
	LogLevel  string

	DatabaseDSN string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.BasePath = common.DefaultBasePath
	c.SecretKey = ""
	c.TokenTTL = 24 * time.Hour
	c.Password = "password"
	c.LogLevel = "info"
	c.DatabaseDSN = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.ensureSecret()
	return cfg
}

func (c *Config) ensureSecret() {
	if c.SecretKey != "" {
		return
	}
	s, err := common.MakeRandHexString(32)
	if err != nil {
		panic(err)
	}
	c.SecretKey = s
}
