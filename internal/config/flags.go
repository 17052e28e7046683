package config

import (
	"flag"
	"os"

	"github.com/guidolabarca009-sketch/chat-app/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path of the SQLite store file
//	-p int      minimum password length
//	-m int      maximum message length
//	-l string   log level (debug|info|warn|error)
//
// Arguments are filtered with flagx.FilterArgs so flags owned by other
// packages (like -c for the JSON config) do not trip the FlagSet.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-p", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the store file")
	fs.IntVar(&cfg.MinPasswordLength, "p", cfg.MinPasswordLength, "minimum password length")
	fs.IntVar(&cfg.MaxMessageLength, "m", cfg.MaxMessageLength, "maximum message length")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
