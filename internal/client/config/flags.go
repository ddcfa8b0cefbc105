package config

import (
	"flag"

	"github.com/dmitrijs2005/coursestore/internal/flagx"
)

// parseFlags overlays selected Config fields from the command line.
//
// Supported flags:
//
//	-a string   base URL of the course store API
//	-db string  path to the local state database
//	-debug      enable debug logging
//
// Args are filtered to the flags owned here so parsing never trips over
// flags handled elsewhere (e.g. -config).
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-db", "-debug"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the course store API")
	fs.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "path to the local state database")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")
	_ = fs.Parse(args)
}
