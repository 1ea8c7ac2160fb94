package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophdocs/internal/flagx"
	"github.com/dmitrijs2005/gophdocs/internal/timex"
)

// JsonConfig is the JSON file form of Config. TokenTTL accepts both "90m"
// style strings and integer nanoseconds. Absent fields keep their current
// values.
type JsonConfig struct {
	Address   *string         `json:"address"`
	BasePath  *string         `json:"base_path"`
	SecretKey *string         `json:"secret_key"`
	TokenTTL  *timex.Duration `json:"token_ttl"`
	Password  *string         `json:"password"`
	LogLevel  *string         `json:"log_level"`

	DatabaseDSN *string `json:"database_dsn"`
}

// parseJson loads the file named by -c/-config into config. Without the
// flag nothing is loaded. Read or decode errors panic.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Address != nil {
		config.Address = *c.Address
	}
	if c.BasePath != nil {
		config.BasePath = *c.BasePath
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.TokenTTL != nil {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.Password != nil {
		config.Password = *c.Password
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
}
