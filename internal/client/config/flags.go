package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/patientcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend server (default from Config)
//	-d string   path of the local sqlite session database
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with the JSON-config flags.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the backend server")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path of the local session database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
