package rowactions

// Binding connects one (kind, subkind) pair to the host's listing hook
// point. It owns the set of default-action keys stripped from the host list
// before registered actions are spliced in. Bindings live for the process
// lifetime, like the registry entries they point at.
type Binding struct {
	kind       Kind
	subkind    string
	removeKeys map[string]struct{}
}

func newBinding(kind Kind, subkind string, removeKeys []string) *Binding {
	binding := &Binding{
		kind:       kind,
		subkind:    subkind,
		removeKeys: make(map[string]struct{}, len(removeKeys)),
	}
	for _, key := range removeKeys {
		if key == "" {
			continue
		}
		binding.removeKeys[key] = struct{}{}
	}
	return binding
}

// Kind returns the bound object kind.
func (b *Binding) Kind() Kind {
	if b == nil {
		return ""
	}
	return b.kind
}

// Subkind returns the bound object subkind.
func (b *Binding) Subkind() string {
	if b == nil {
		return ""
	}
	return b.subkind
}

// removes reports whether a host default action key should be stripped.
func (b *Binding) removes(key string) bool {
	if b == nil {
		return false
	}
	_, ok := b.removeKeys[key]
	return ok
}
