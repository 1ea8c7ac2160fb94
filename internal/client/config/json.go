package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophdocs/internal/flagx"
	"github.com/dmitrijs2005/gophdocs/internal/timex"
)

// JsonConfig is the on-disk shape of the client configuration. Pointer fields
// distinguish "absent" from zero values, so a partial file only overrides
// what it names.
type JsonConfig struct {
	ServerBaseURL  *string         `json:"server_base_url"`
	DatabasePath   *string         `json:"database_path"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	NoticeTTL      *timex.Duration `json:"notice_ttl"`
	PageSize       *int            `json:"page_size"`
	LogLevel       *string         `json:"log_level"`
	LogFile        *string         `json:"log_file"`
}

// parseJson overlays cfg with the file named by -c/-config. Without the flag
// nothing happens. Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.NoticeTTL != nil {
		cfg.NoticeTTL = jc.NoticeTTL.Duration
	}
	if jc.PageSize != nil {
		cfg.PageSize = *jc.PageSize
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFile != nil {
		cfg.LogFile = *jc.LogFile
	}
}
