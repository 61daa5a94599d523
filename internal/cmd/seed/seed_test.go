package seed

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != filepath.Join("data", "admin.db") {
		t.Fatalf("unexpected default db path %q", cfg.DBPath)
	}
	if cfg.Verbose {
		t.Fatal("expected verbose off by default")
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		if key == "ROWACTIONS_ADMIN_DB_PATH" {
			return "env.db", true
		}
		return "", false
	}
	cfg, err := ParseConfig(fs, []string{"-v"}, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "env.db" {
		t.Fatalf("expected env db path, got %q", cfg.DBPath)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose flag")
	}
}

func TestRunSeedsDatabase(t *testing.T) {
	out := &bytes.Buffer{}
	cfg := Config{DBPath: filepath.Join(t.TempDir(), "admin.db")}
	if err := Run(context.Background(), cfg, out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.Len() == 0 {
		t.Fatal("expected summary output")
	}
}
