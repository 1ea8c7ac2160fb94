package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "127.0.0.1:9090", "-b", "/api", "-s", "secret",
				"-t", "90", "-p", "letmein", "-l", "debug", "-d", "postgres://docs@db/docs"},
			expected: &Config{
				Address:   "127.0.0.1:9090",
				BasePath:  "/api",
				SecretKey: "secret",
				TokenTTL:  90 * time.Minute,
				Password:  "letmein",
				LogLevel:  "debug",

				DatabaseDSN: "postgres://docs@db/docs",
			},
		},
		{
			name:     "client flags are ignored",
			args:     []string{"cmd", "-r", "5", "-f", "cli.log", "-a", ":1"},
			expected: &Config{Address: ":1"},
		},
		{
			name:        "bad ttl",
			args:        []string{"cmd", "-t", "soon"},
			expectPanic: true,
		},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
