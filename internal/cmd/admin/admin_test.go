package admin

import (
	"context"
	"flag"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != defaultHTTPAddr {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DefaultRole != defaultRole {
		t.Fatalf("expected default role, got %q", cfg.DefaultRole)
	}
	if cfg.TokenKeyHex != "" {
		t.Fatalf("expected empty token key, got %q", cfg.TokenKeyHex)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		switch key {
		case "ROWACTIONS_ADMIN_ADDR":
			return "env-addr", true
		case "ROWACTIONS_ACTION_TOKEN_KEY":
			return "deadbeef", true
		case "ROWACTIONS_DEFAULT_ROLE":
			return "editor", true
		default:
			return "", false
		}
	}
	args := []string{"-http-addr", "flag-addr", "-db-path", "flag.db"}
	cfg, err := ParseConfig(fs, args, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-addr" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "flag.db" {
		t.Fatalf("expected flag db path, got %q", cfg.DBPath)
	}
	if cfg.TokenKeyHex != "deadbeef" {
		t.Fatalf("expected env token key, got %q", cfg.TokenKeyHex)
	}
	if cfg.DefaultRole != "editor" {
		t.Fatalf("expected env role, got %q", cfg.DefaultRole)
	}
}

func TestRunRequiresTokenKey(t *testing.T) {
	err := Run(context.Background(), Config{})
	if err == nil {
		t.Fatal("expected error without token key")
	}
	if !strings.Contains(err.Error(), "ROWACTIONS_ACTION_TOKEN_KEY") {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestRunRejectsMalformedKey(t *testing.T) {
	err := Run(context.Background(), Config{TokenKeyHex: "not-hex"})
	if err == nil {
		t.Fatal("expected error for malformed hex key")
	}
}
