package rowactions

import (
	"context"
	"errors"
	"testing"

	apperrors "github.com/louisbranch/rowactions/internal/platform/errors"
)

func TestRegisterRejectsEmptyKey(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(KindItem, "article", Definition{Key: "  "})
	if err == nil {
		t.Fatal("expected validation error for empty key")
	}
	if !errors.Is(err, apperrors.New(apperrors.CodeActionKeyEmpty, "")) {
		t.Fatalf("expected code %s, got %v", apperrors.CodeActionKeyEmpty, err)
	}
	if got := registry.Actions(KindItem, "article"); len(got) != 0 {
		t.Fatalf("expected no stored actions, got %d", len(got))
	}
}

func TestRegisterRejectsInvalidKind(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(Kind("bogus"), "article", Definition{Key: "archive"})
	if !errors.Is(err, apperrors.New(apperrors.CodeActionKindEmpty, "")) {
		t.Fatalf("expected code %s, got %v", apperrors.CodeActionKindEmpty, err)
	}
}

func TestRegisterFillsDefaults(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(KindItem, "article", Definition{Key: "archive"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	def, ok := registry.ActionByKey(KindItem, "article", "archive")
	if !ok {
		t.Fatal("expected registered action")
	}
	perm, ok := def.Permission.(AllowCapability)
	if !ok {
		t.Fatalf("expected default capability permission, got %T", def.Permission)
	}
	if perm.Capability != CapabilityManagePlatform {
		t.Fatalf("expected default capability %s, got %s", CapabilityManagePlatform, perm.Capability)
	}
	if def.Label != "archive" {
		t.Fatalf("expected label to default to key, got %q", def.Label)
	}
}

func TestRegisterDefaultsEmptyResolverCapability(t *testing.T) {
	registry := NewRegistry()

	def := Definition{
		Key: "archive",
		Permission: AllowResolver{
			Resolver: func(context.Context, int64) bool { return true },
		},
	}
	if err := registry.Register(KindItem, "article", def); err != nil {
		t.Fatalf("register: %v", err)
	}

	stored, _ := registry.ActionByKey(KindItem, "article", "archive")
	perm, ok := stored.Permission.(AllowResolver)
	if !ok {
		t.Fatalf("expected resolver permission, got %T", stored.Permission)
	}
	if perm.Capability != CapabilityManagePlatform {
		t.Fatalf("expected defaulted capability, got %s", perm.Capability)
	}
}

func TestRegisterOverwriteReplacesWholeDefinition(t *testing.T) {
	registry := NewRegistry()

	first := Definition{Key: "archive", Label: "Archive", Confirm: "Sure?", CSSClass: "warn"}
	second := Definition{Key: "archive", Label: "Archive now"}
	if err := registry.Register(KindItem, "article", first); err != nil {
		t.Fatalf("register first: %v", err)
	}
	if err := registry.Register(KindItem, "article", second); err != nil {
		t.Fatalf("register second: %v", err)
	}

	def, _ := registry.ActionByKey(KindItem, "article", "archive")
	if def.Label != "Archive now" {
		t.Fatalf("expected replaced label, got %q", def.Label)
	}
	if def.Confirm != "" || def.CSSClass != "" {
		t.Fatal("expected field-level values from the first registration to be gone")
	}
}

func TestRegisterOverwriteKeepsRegistrationOrder(t *testing.T) {
	registry := NewRegistry()

	for _, key := range []string{"first", "second", "third"} {
		if err := registry.Register(KindItem, "article", Definition{Key: key}); err != nil {
			t.Fatalf("register %s: %v", key, err)
		}
	}
	if err := registry.Register(KindItem, "article", Definition{Key: "second", Label: "again"}); err != nil {
		t.Fatalf("re-register: %v", err)
	}

	actions := registry.Actions(KindItem, "article")
	keys := make([]string, len(actions))
	for i, def := range actions {
		keys[i] = def.Key
	}
	if keys[0] != "first" || keys[1] != "second" || keys[2] != "third" {
		t.Fatalf("expected stable order, got %v", keys)
	}
}

func TestActionsEmptyWhenNothingRegistered(t *testing.T) {
	registry := NewRegistry()

	if got := registry.Actions(KindTerm, "category"); len(got) != 0 {
		t.Fatalf("expected empty actions, got %d", len(got))
	}
	if _, ok := registry.ActionByKey(KindTerm, "category", "merge"); ok {
		t.Fatal("expected missing action")
	}
}

func TestActionsIsolatedPerSubkind(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(KindItem, "article", Definition{Key: "archive"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	if got := registry.Actions(KindItem, "page"); len(got) != 0 {
		t.Fatalf("expected no actions for other subkind, got %d", len(got))
	}
}
