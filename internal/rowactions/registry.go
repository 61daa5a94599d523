package rowactions

import (
	"strings"
	"sync"

	apperrors "github.com/louisbranch/rowactions/internal/platform/errors"
	"github.com/louisbranch/rowactions/internal/rowactions/orderedmap"
)

// Registry stores action definitions keyed by kind, subkind, and action key.
//
// It is an explicit injectable store owned by the composition root so tests
// can construct isolated registries. Registration happens during the
// configuration phase; reads during request handling take the read lock only.
// Re-registering an existing (kind, subkind, key) replaces the whole
// definition while keeping its original position in registration order.
type Registry struct {
	mu    sync.RWMutex
	kinds map[Kind]map[string]*orderedmap.List[Definition]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[Kind]map[string]*orderedmap.List[Definition])}
}

// Register validates and stores one definition under (kind, subkind, key).
// Unset optional fields are filled with their documented defaults before
// storing. An empty action key is a validation error; dispatch never sees
// such a definition.
func (r *Registry) Register(kind Kind, subkind string, def Definition) error {
	if !kind.Valid() {
		return apperrors.New(apperrors.CodeActionKindEmpty, "object kind is required")
	}
	key := strings.TrimSpace(def.Key)
	if key == "" {
		return apperrors.New(apperrors.CodeActionKeyEmpty, "action key is required")
	}
	def.Key = key
	def = withDefaults(def)

	r.mu.Lock()
	defer r.mu.Unlock()
	subkinds, ok := r.kinds[kind]
	if !ok {
		subkinds = make(map[string]*orderedmap.List[Definition])
		r.kinds[kind] = subkinds
	}
	actions, ok := subkinds[subkind]
	if !ok {
		actions = orderedmap.New[Definition](4)
		subkinds[subkind] = actions
	}
	actions.Set(key, def)
	return nil
}

// Actions returns the definitions for (kind, subkind) in registration order.
// The slice is empty when nothing is registered.
func (r *Registry) Actions(kind Kind, subkind string) []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	actions := r.lookupLocked(kind, subkind)
	if actions == nil {
		return nil
	}
	entries := actions.Entries()
	defs := make([]Definition, len(entries))
	for i, entry := range entries {
		defs[i] = entry.Value
	}
	return defs
}

// ActionByKey returns the definition registered under (kind, subkind, key).
func (r *Registry) ActionByKey(kind Kind, subkind, key string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	actions := r.lookupLocked(kind, subkind)
	if actions == nil {
		return Definition{}, false
	}
	return actions.Get(key)
}

func (r *Registry) lookupLocked(kind Kind, subkind string) *orderedmap.List[Definition] {
	subkinds, ok := r.kinds[kind]
	if !ok {
		return nil
	}
	return subkinds[subkind]
}

// withDefaults fills unset optional fields with their documented defaults.
// Permission defaults to the most privileged capability so an action stays
// hidden until the caller explicitly relaxes it.
func withDefaults(def Definition) Definition {
	if def.Permission == nil {
		def.Permission = AllowCapability{Capability: CapabilityManagePlatform}
	}
	if perm, ok := def.Permission.(AllowCapability); ok && perm.Capability == "" {
		def.Permission = AllowCapability{Capability: CapabilityManagePlatform}
	}
	if perm, ok := def.Permission.(AllowResolver); ok && perm.Capability == "" {
		perm.Capability = CapabilityManagePlatform
		def.Permission = perm
	}
	if def.Label == "" && def.LabelFunc == nil {
		def.Label = def.Key
	}
	return def
}
