package rowactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

type asyncFixture struct {
	registry *Registry
	tokens   *Tokens
	handler  *AsyncHandler
}

func newAsyncFixture(t *testing.T, checker CapabilityChecker) *asyncFixture {
	t.Helper()
	registry := NewRegistry()
	tokens := testTokens(t, nil)
	resolve := func(*http.Request) CapabilityChecker { return checker }
	return &asyncFixture{
		registry: registry,
		tokens:   tokens,
		handler:  NewAsyncHandler(registry, tokens, KindComment, resolve),
	}
}

func (f *asyncFixture) register(t *testing.T, def Definition) {
	t.Helper()
	if err := f.registry.Register(KindComment, "review", def); err != nil {
		t.Fatalf("register: %v", err)
	}
}

func (f *asyncFixture) post(t *testing.T, form url.Values) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/actions/run/comment", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	var body envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return rec, body
}

func (f *asyncFixture) validForm(t *testing.T, actionKey string, objectID string) url.Values {
	t.Helper()
	token, err := f.tokens.Mint(KindComment, "review", actionKey, 42)
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	return url.Values{
		"action_key":     {actionKey},
		"object_subtype": {"review"},
		"object_id":      {objectID},
		"token":          {token},
	}
}

func TestAsyncRejectsNonPost(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/actions/run/comment", nil)
	rec := httptest.NewRecorder()
	fixture.handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if rec.Header().Get("Allow") != http.MethodPost {
		t.Fatalf("expected Allow header, got %q", rec.Header().Get("Allow"))
	}
}

func TestAsyncUnknownAction(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	rec, body := fixture.post(t, url.Values{
		"action_key":     {"missing"},
		"object_subtype": {"review"},
		"object_id":      {"42"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body.Success {
		t.Fatal("expected failure envelope")
	}
	if body.Data["message"] != "invalid action" {
		t.Fatalf("expected invalid action message, got %v", body.Data["message"])
	}
}

func TestAsyncRejectsMalformedObjectID(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key:        "approve",
		Target:     AsyncCallback(func(context.Context, int64, Options) (Outcome, error) { return Outcome{}, nil }),
		Permission: AllowAll{},
	})

	for _, raw := range []string{"", "abc", "-1", "12.5"} {
		form := fixture.validForm(t, "approve", "42")
		form.Set("object_id", raw)
		rec, body := fixture.post(t, form)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("object_id %q: expected 400, got %d", raw, rec.Code)
		}
		if body.Data["message"] != "invalid object id" {
			t.Fatalf("object_id %q: unexpected message %v", raw, body.Data["message"])
		}
	}
}

func TestAsyncTokenBoundToObject(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key:        "approve",
		Target:     AsyncCallback(func(context.Context, int64, Options) (Outcome, error) { return Outcome{}, nil }),
		Permission: AllowAll{},
	})

	// Token minted for object 42, request claims object 43.
	form := fixture.validForm(t, "approve", "42")
	form.Set("object_id", "43")
	rec, body := fixture.post(t, form)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body.Data["message"] != "invalid security token" {
		t.Fatalf("expected token message, got %v", body.Data["message"])
	}
}

func TestAsyncReChecksPermission(t *testing.T) {
	fixture := newAsyncFixture(t, capabilitySet{})
	fixture.register(t, Definition{
		Key:        "approve",
		Target:     AsyncCallback(func(context.Context, int64, Options) (Outcome, error) { return Outcome{}, nil }),
		Permission: AllowCapability{Capability: CapabilityModerateComments},
	})

	rec, body := fixture.post(t, fixture.validForm(t, "approve", "42"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body.Data["message"] != "insufficient permissions" {
		t.Fatalf("expected permission message, got %v", body.Data["message"])
	}
}

func TestAsyncRejectsURLActions(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key:        "visit",
		Target:     StaticURL("/somewhere"),
		Permission: AllowAll{},
	})

	rec, body := fixture.post(t, fixture.validForm(t, "visit", "42"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Data["message"] != "invalid callback" {
		t.Fatalf("expected callback message, got %v", body.Data["message"])
	}
}

func TestAsyncZeroOutcomeNormalizes(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key:        "approve",
		Target:     AsyncCallback(func(context.Context, int64, Options) (Outcome, error) { return Outcome{}, nil }),
		Permission: AllowAll{},
	})

	rec, body := fixture.post(t, fixture.validForm(t, "approve", "42"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !body.Success {
		t.Fatal("expected success envelope")
	}
	if body.Data["message"] != defaultCompletionMessage {
		t.Fatalf("expected default message, got %v", body.Data["message"])
	}
}

func TestAsyncOutcomeSignalsPassThrough(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key: "approve",
		Target: AsyncCallback(func(context.Context, int64, Options) (Outcome, error) {
			return Outcome{
				Message:   "Approved.",
				Reload:    true,
				RemoveRow: true,
				Fields:    map[string]any{"success": false, "count": float64(3)},
			}, nil
		}),
		Permission: AllowAll{},
	})

	_, body := fixture.post(t, fixture.validForm(t, "approve", "42"))
	if !body.Success {
		t.Fatal("expected structurally successful envelope")
	}
	if body.Data["message"] != "Approved." {
		t.Fatalf("expected callback message, got %v", body.Data["message"])
	}
	if body.Data["reload"] != true || body.Data["remove_row"] != true {
		t.Fatalf("expected signal fields, got %v", body.Data)
	}
	// Business-level failure inside the envelope is opaque pass-through.
	if body.Data["success"] != false {
		t.Fatalf("expected opaque success field, got %v", body.Data["success"])
	}
	if body.Data["count"] != float64(3) {
		t.Fatalf("expected opaque count field, got %v", body.Data["count"])
	}
}

func TestAsyncCallbackErrorSurfacesMessage(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key: "approve",
		Target: AsyncCallback(func(context.Context, int64, Options) (Outcome, error) {
			return Outcome{}, errors.New("comment is locked")
		}),
		Permission: AllowAll{},
	})

	rec, body := fixture.post(t, fixture.validForm(t, "approve", "42"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body.Data["message"] != "comment is locked" {
		t.Fatalf("expected callback error message, got %v", body.Data["message"])
	}
}

func TestAsyncCallbackPanicIsContained(t *testing.T) {
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key: "approve",
		Target: AsyncCallback(func(context.Context, int64, Options) (Outcome, error) {
			panic("boom")
		}),
		Permission: AllowAll{},
	})

	rec, body := fixture.post(t, fixture.validForm(t, "approve", "42"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	message, _ := body.Data["message"].(string)
	if !strings.Contains(message, "boom") {
		t.Fatalf("expected panic message, got %q", message)
	}
}

func TestAsyncOptionsParsing(t *testing.T) {
	var received Options
	fixture := newAsyncFixture(t, nil)
	fixture.register(t, Definition{
		Key: "approve",
		Target: AsyncCallback(func(_ context.Context, _ int64, opts Options) (Outcome, error) {
			received = opts
			return Outcome{}, nil
		}),
		Permission: AllowAll{},
	})

	tests := []struct {
		name    string
		raw     string
		wantLen int
	}{
		{name: "valid object", raw: `{"note":"ok","level":2}`, wantLen: 2},
		{name: "invalid json", raw: `{broken`, wantLen: 0},
		{name: "non-object json", raw: `[1,2]`, wantLen: 0},
		{name: "absent", raw: "", wantLen: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			received = nil
			form := fixture.validForm(t, "approve", "42")
			if tc.raw != "" {
				form.Set("options", tc.raw)
			}
			rec, _ := fixture.post(t, form)
			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.Code)
			}
			if len(received) != tc.wantLen {
				t.Fatalf("expected %d options, got %v", tc.wantLen, received)
			}
		})
	}

	form := fixture.validForm(t, "approve", "42")
	form.Set("options", `{"note":"ok"}`)
	fixture.post(t, form)
	if received["note"] != "ok" {
		t.Fatalf("expected note option, got %v", received)
	}
}
