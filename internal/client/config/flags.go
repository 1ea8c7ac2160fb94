package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   documents API base URL
//	-d string   SQLite database path
//	-r int      request timeout, seconds (0 = none)
//	-t int      success notice lifetime, seconds
//	-p int      page size
//	-l string   log level
//	-f string   log file
//
// Unknown arguments are filtered out with flagx.FilterArgs. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-r", "-t", "-p", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "documents API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local session database")
	requestTimeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 = none)")
	noticeTTL := fs.Int("t", int(cfg.NoticeTTL.Seconds()), "success notice lifetime (in seconds)")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "documents per page")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&cfg.LogFile, "f", cfg.LogFile, "log file (stderr when empty)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.NoticeTTL = time.Duration(*noticeTTL) * time.Second
}
