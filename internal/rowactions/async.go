package rowactions

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	otelattribute "go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/rowactions/internal/platform/errors"
)

// defaultCompletionMessage is injected when a callback reports no message.
const defaultCompletionMessage = "Action completed."

// asyncTracerName scopes spans emitted by async dispatch.
const asyncTracerName = "github.com/louisbranch/rowactions/internal/rowactions"

// AsyncHandler executes registered asynchronous actions for one object kind.
//
// Each request walks received, validated, authorized, executed, responded;
// any failing stage short-circuits into a structured error envelope with a
// fixed status code. Callback failures surface as responses, never as
// handler crashes.
type AsyncHandler struct {
	registry       *Registry
	tokens         *Tokens
	kind           Kind
	resolveChecker func(*http.Request) CapabilityChecker
}

// NewAsyncHandler builds the async endpoint for one kind. resolveChecker
// supplies the per-request capability checker; a nil resolver denies every
// capability-gated action.
func NewAsyncHandler(registry *Registry, tokens *Tokens, kind Kind, resolveChecker func(*http.Request) CapabilityChecker) *AsyncHandler {
	return &AsyncHandler{
		registry:       registry,
		tokens:         tokens,
		kind:           kind,
		resolveChecker: resolveChecker,
	}
}

func (h *AsyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeFailure(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err := r.ParseForm(); err != nil {
		writeFailure(w, http.StatusBadRequest, "invalid request")
		return
	}

	actionKey := strings.TrimSpace(r.PostFormValue("action_key"))
	subkind := strings.TrimSpace(r.PostFormValue("object_subtype"))
	rawObjectID := strings.TrimSpace(r.PostFormValue("object_id"))
	token := r.PostFormValue("token")

	ctx, span := otel.Tracer(asyncTracerName).Start(r.Context(), "rowactions.async_dispatch",
		trace.WithAttributes(
			otelattribute.String("rowactions.kind", string(h.kind)),
			otelattribute.String("rowactions.subkind", subkind),
			otelattribute.String("rowactions.action_key", actionKey),
		))
	defer span.End()

	def, ok := h.registry.ActionByKey(h.kind, subkind, actionKey)
	if !ok || actionKey == "" {
		failSpan(span, apperrors.CodeActionUnknown)
		writeFailure(w, apperrors.CodeActionUnknown.HTTPStatus(), "invalid action")
		return
	}

	// Malformed ids are rejected outright rather than coerced to zero; no
	// listing object carries a negative or non-numeric id.
	objectID, err := strconv.ParseInt(rawObjectID, 10, 64)
	if err != nil || objectID < 0 {
		failSpan(span, apperrors.CodeObjectIDInvalid)
		writeFailure(w, apperrors.CodeObjectIDInvalid.HTTPStatus(), "invalid object id")
		return
	}

	if err := h.tokens.Validate(token, h.kind, subkind, actionKey, objectID); err != nil {
		failSpan(span, apperrors.CodeOf(err))
		writeFailure(w, apperrors.HTTPStatus(err), "invalid security token")
		return
	}

	// Permission is re-checked on every dispatch; a replayed token fails
	// here when capability or object state changed since render.
	var checker CapabilityChecker
	if h.resolveChecker != nil {
		checker = h.resolveChecker(r)
	}
	if !def.allowed(ctx, checker, objectID) {
		failSpan(span, apperrors.CodePermissionDenied)
		writeFailure(w, apperrors.CodePermissionDenied.HTTPStatus(), "insufficient permissions")
		return
	}

	callback, ok := def.async()
	if !ok || callback == nil {
		failSpan(span, apperrors.CodeCallbackInvalid)
		writeFailure(w, apperrors.CodeCallbackInvalid.HTTPStatus(), "invalid callback")
		return
	}

	outcome, err := runCallback(ctx, callback, objectID, parseOptions(r.PostFormValue("options")))
	if err != nil {
		log.Printf("rowactions: run %s/%s/%s on %d: %v", h.kind, subkind, actionKey, objectID, err)
		failSpan(span, apperrors.CodeCallbackFailed)
		writeFailure(w, apperrors.CodeCallbackFailed.HTTPStatus(), err.Error())
		return
	}

	span.SetStatus(codes.Ok, "")
	writeSuccess(w, normalize(outcome))
}

// runCallback contains callback panics so a misbehaving action can never take
// down request handling.
func runCallback(ctx context.Context, callback Callback, objectID int64, opts Options) (outcome Outcome, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("action callback panic: %v", recovered)
		}
	}()
	return callback(ctx, objectID, opts)
}

// parseOptions extracts the free-form options payload. Anything that is not
// a JSON object becomes an empty payload rather than an error.
func parseOptions(raw string) Options {
	raw = strings.TrimSpace(raw)
	if raw == "" || !gjson.Valid(raw) {
		return Options{}
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsObject() {
		return Options{}
	}
	values, ok := parsed.Value().(map[string]any)
	if !ok {
		return Options{}
	}
	return Options(values)
}

// normalize applies the two documented response normalizations: a zero
// outcome still succeeds, and a missing message gets the default completion
// text. Caller-defined fields pass through untouched.
func normalize(outcome Outcome) map[string]any {
	data := make(map[string]any, len(outcome.Fields)+5)
	for key, value := range outcome.Fields {
		data[key] = value
	}
	if outcome.Message != "" {
		data["message"] = outcome.Message
	}
	if _, ok := data["message"]; !ok {
		data["message"] = defaultCompletionMessage
	}
	if outcome.Reload {
		data["reload"] = true
	}
	if outcome.Redirect != "" {
		data["redirect"] = outcome.Redirect
	}
	if outcome.RemoveRow {
		data["remove_row"] = true
	}
	if outcome.ReplaceRowHTML != "" {
		data["replace_row"] = outcome.ReplaceRowHTML
	}
	return data
}

type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
}

func writeSuccess(w http.ResponseWriter, data map[string]any) {
	writeEnvelope(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeFailure(w http.ResponseWriter, statusCode int, message string) {
	writeEnvelope(w, statusCode, envelope{
		Success: false,
		Data:    map[string]any{"message": message},
	})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("rowactions: write response: %v", err)
	}
}

func failSpan(span trace.Span, code apperrors.Code) {
	span.SetStatus(codes.Error, string(code))
	span.SetAttributes(otelattribute.String("rowactions.error_code", string(code)))
}
