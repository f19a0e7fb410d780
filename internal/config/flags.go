package config

import (
	"flag"
	"os"

	"github.com/dkovalev/todovault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   storage backend: file | sqlite | memory | disabled
//	-f string   storage file path (file and sqlite backends)
//	-s string   session signing secret
//
// Args are filtered with flagx.FilterArgs so flags owned by other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-f", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	backend := fs.String("b", string(cfg.StorageBackend), "storage backend (file, sqlite, memory, disabled)")
	fs.StringVar(&cfg.StoragePath, "f", cfg.StoragePath, "storage file path")
	fs.StringVar(&cfg.SessionSecret, "s", cfg.SessionSecret, "session signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.StorageBackend = Backend(*backend)
}
