package seed

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	adminsqlite "github.com/louisbranch/rowactions/internal/services/admin/storage/sqlite"
)

func TestRunInsertsFixtures(t *testing.T) {
	store, err := adminsqlite.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	out := &bytes.Buffer{}
	if err := Run(context.Background(), Config{Verbose: true}, store, out); err != nil {
		t.Fatalf("run seed: %v", err)
	}

	ctx := context.Background()
	items, err := store.ListItems(ctx)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != len(demoItems) {
		t.Fatalf("expected %d items, got %d", len(demoItems), len(items))
	}
	comments, err := store.ListComments(ctx)
	if err != nil {
		t.Fatalf("list comments: %v", err)
	}
	if len(comments) != len(demoComments) {
		t.Fatalf("expected %d comments, got %d", len(demoComments), len(comments))
	}
	if !strings.Contains(out.String(), "seeded") {
		t.Fatalf("expected summary line, got %q", out.String())
	}
}

func TestRunRequiresStore(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, nil); err == nil {
		t.Fatal("expected error without store")
	}
}
