package config

import (
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// Config holds runtime settings for the gophdocs client.
//
// Fields:
//   - ServerBaseURL: documents API base URL, including the base path.
//   - DatabasePath: SQLite file that keeps the session token.
//   - RequestTimeout: per-request timeout; 0 disables it.
//   - NoticeTTL: how long success notices stay on screen in the browser.
//   - PageSize: initial page size of the document list.
//   - LogLevel / LogFile: log verbosity and destination (stderr when empty).
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
	NoticeTTL      time.Duration
	PageSize       int
	LogLevel       string
	LogFile        string
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = common.DefaultServerBaseURL
	c.DatabasePath = "gophdocs.db"
	c.RequestTimeout = 0
	c.NoticeTTL = 3 * time.Second
	c.PageSize = 10
	c.LogLevel = "warn"
	c.LogFile = ""
}

// LoadConfig applies defaults, then the optional JSON file, then flags.
// Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
