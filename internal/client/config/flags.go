package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/flowgate/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   backend base URL
//	-p string   proxy URL
//	-d string   session database path
//	-l string   log level
//	-f string   log format
//
// Only these flags are parsed; the rest of os.Args is left to other parsers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-d", "-l", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	fs.StringVar(&cfg.ProxyURL, "p", cfg.ProxyURL, "proxy URL shown in usage hints")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
