package config

import (
	"flag"
	"os"

	"github.com/talentflow-app/talentflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string    listen address of the demo server
//	-d string    SQLite DSN of the local store
//	-s int       seed for the generated demo data
//	-f float     backend failure rate (0..1)
//
// Args are filtered through flagx.FilterArgs so flags owned by other
// components are ignored.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to listen on")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "local store SQLite DSN")
	fs.Int64Var(&cfg.Seed, "s", cfg.Seed, "demo data seed")
	fs.Float64Var(&cfg.BackendFailureRate, "f", cfg.BackendFailureRate, "backend failure rate (0..1)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
