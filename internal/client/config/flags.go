package config

import (
	"flag"
	"os"
	"time"

	"github.com/MustafaTekin48/marine-field-app/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the marine ERP (default from Config)
//	-p int      list page size (default from Config)
//	-t int      request timeout in seconds, 0 for none (default from Config)
//	-d string   path of the local credentials database (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the marine ERP")
	fs.IntVar(&cfg.PageSize, "p", cfg.PageSize, "list page size")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds, 0 for none)")
	fs.StringVar(&cfg.CredentialsDB, "d", cfg.CredentialsDB, "path of the local credentials database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
