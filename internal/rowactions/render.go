package rowactions

import (
	"context"
	"log"

	"github.com/louisbranch/rowactions/internal/rowactions/orderedmap"
)

// HostList is the ordered key to HTML-fragment action list exchanged with the
// host's listing hooks. The host supplies its default actions in one and
// receives the augmented copy back.
type HostList = orderedmap.List[string]

// Renderer builds the augmented action list for one listing row. It holds no
// per-request state; every Render call starts from the host-supplied list.
type Renderer struct {
	registry *Registry
	tokens   *Tokens
}

// NewRenderer wires a renderer to its registry and token service.
func NewRenderer(registry *Registry, tokens *Tokens) *Renderer {
	return &Renderer{registry: registry, tokens: tokens}
}

// Render evaluates every action registered for the binding's kind and
// subkind against one object and splices the surviving links into the host
// list. Permission failures skip the action silently; the rendered link is
// not a trust boundary, so the async handler re-checks permission on
// dispatch.
func (r *Renderer) Render(ctx context.Context, checker CapabilityChecker, binding *Binding, objectID int64, existing *HostList) *HostList {
	result := orderedmap.New[string](existing.Len() + 4)
	for _, entry := range existing.Entries() {
		if binding.removes(entry.Key) {
			continue
		}
		result.Set(entry.Key, entry.Value)
	}

	for _, def := range r.registry.Actions(binding.Kind(), binding.Subkind()) {
		if !def.allowed(ctx, checker, objectID) {
			continue
		}
		fragment, err := r.anchorHTML(ctx, def, binding, objectID)
		if err != nil {
			log.Printf("render action %s/%s/%s: %v", binding.Kind(), binding.Subkind(), def.Key, err)
			continue
		}
		splice(result, def, fragment)
	}
	return result
}

func splice(result *HostList, def Definition, fragment string) {
	entry := orderedmap.Entry[string]{Key: def.Key, Value: fragment}
	switch def.Position.relation {
	case positionAfter:
		result.InsertAfter(def.Position.refKey, entry)
	case positionBefore:
		result.InsertBefore(def.Position.refKey, entry)
	default:
		result.Set(def.Key, fragment)
	}
}

func (r *Renderer) anchorHTML(ctx context.Context, def Definition, binding *Binding, objectID int64) (string, error) {
	label := def.Label
	if def.LabelFunc != nil {
		label = def.LabelFunc(objectID)
	}

	if _, ok := def.async(); ok {
		token, err := r.tokens.Mint(binding.Kind(), binding.Subkind(), def.Key, objectID)
		if err != nil {
			return "", err
		}
		return renderFragment(ctx, asyncAnchor(def, binding.Kind(), binding.Subkind(), objectID, token, label))
	}
	return renderFragment(ctx, urlAnchor(def, objectID, label))
}
