// Package rowactions implements registration and dispatch of custom row
// actions for tabular admin listings.
//
// Callers register action definitions per object kind and subkind during a
// configuration phase; the host's listing hooks later ask the renderer for
// the augmented per-row action list, and asynchronous actions run through the
// HTTP handler with a token handshake bound to the exact action and object.
package rowactions

// Kind identifies one of the host listing object kinds.
type Kind string

const (
	// KindItem covers generic content item listings.
	KindItem Kind = "item"
	// KindPrincipal covers user account listings.
	KindPrincipal Kind = "principal"
	// KindTerm covers taxonomy term listings.
	KindTerm Kind = "term"
	// KindComment covers comment listings.
	KindComment Kind = "comment"
	// KindAttachment covers uploaded file listings.
	KindAttachment Kind = "attachment"
)

// Kinds returns every supported object kind in listing order.
func Kinds() []Kind {
	return []Kind{KindItem, KindPrincipal, KindTerm, KindComment, KindAttachment}
}

// Valid reports whether k is a supported object kind.
func (k Kind) Valid() bool {
	switch k {
	case KindItem, KindPrincipal, KindTerm, KindComment, KindAttachment:
		return true
	}
	return false
}

// ListingHookName returns the host hook point that renders k's listing rows.
func (k Kind) ListingHookName() string {
	return string(k) + "_row_actions"
}

// AsyncHookName returns the host hook point that runs k's async actions.
func (k Kind) AsyncHookName() string {
	return "run_" + string(k) + "_action"
}
