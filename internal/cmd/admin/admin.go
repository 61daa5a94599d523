// Package admin wires configuration parsing and startup for the admin
// listing server.
package admin

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/rowactions/internal/platform/otel"
	"github.com/louisbranch/rowactions/internal/services/admin"
)

const (
	defaultHTTPAddr = ":8082"
	defaultRole     = "viewer"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr    string
	DBPath      string
	TokenKeyHex string
	TokenTTL    time.Duration
	DefaultRole string
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	cfg := Config{
		HTTPAddr:    envOrDefault(lookup, []string{"ROWACTIONS_ADMIN_ADDR"}, defaultHTTPAddr),
		DBPath:      envOrDefault(lookup, []string{"ROWACTIONS_ADMIN_DB_PATH"}, ""),
		TokenKeyHex: envOrDefault(lookup, []string{"ROWACTIONS_ACTION_TOKEN_KEY"}, ""),
		DefaultRole: envOrDefault(lookup, []string{"ROWACTIONS_DEFAULT_ROLE"}, defaultRole),
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the admin sqlite database")
	fs.StringVar(&cfg.DefaultRole, "default-role", cfg.DefaultRole, "role assumed without a role cookie")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", 0, "action token lifetime (0 = default)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the admin server.
func Run(ctx context.Context, cfg Config) error {
	if strings.TrimSpace(cfg.TokenKeyHex) == "" {
		return fmt.Errorf("ROWACTIONS_ACTION_TOKEN_KEY is required")
	}
	key, err := hex.DecodeString(strings.TrimSpace(cfg.TokenKeyHex))
	if err != nil {
		return fmt.Errorf("decode token key: %w", err)
	}

	shutdown, err := otel.Setup(ctx, "admin")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	server, err := admin.NewServer(ctx, admin.Config{
		HTTPAddr:    cfg.HTTPAddr,
		DBPath:      cfg.DBPath,
		TokenKey:    key,
		TokenTTL:    cfg.TokenTTL,
		DefaultRole: admin.Role(cfg.DefaultRole),
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
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
