package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/goalline/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags:
//
//	-a string   bind address (e.g. ":5000")
//	-k string   token signing secret
//	-t int      token validity, minutes
//	-l string   log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-k", "-t", "-l"})

	fs := flag.NewFlagSet("stubapi", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenTTL = time.Duration(*ttl) * time.Minute
		}
	})
	return nil
}
