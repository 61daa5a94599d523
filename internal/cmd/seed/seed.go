// Package seed wires configuration parsing and startup for the demo data
// seeder.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	adminsqlite "github.com/louisbranch/rowactions/internal/services/admin/storage/sqlite"
	"github.com/louisbranch/rowactions/internal/tools/seed"
)

// Config holds seed command configuration.
type Config struct {
	DBPath  string
	Verbose bool
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		DBPath: envOrDefault(lookup, []string{"ROWACTIONS_ADMIN_DB_PATH"}, filepath.Join("data", "admin.db")),
	}

	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the admin sqlite database")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	store, err := adminsqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open admin store: %w", err)
	}
	defer func() {
		_ = store.Close()
	}()

	return seed.Run(ctx, seed.Config{Verbose: cfg.Verbose}, store, out)
}

func envOrDefault(lookup EnvLookup, keys []string, fallback string) string {
	for _, key := range keys {
		if lookup == nil {
			break
		}
		value, ok := lookup(key)
		if ok {
			trimmed := strings.TrimSpace(value)
			if trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}
