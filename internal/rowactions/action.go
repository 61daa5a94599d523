package rowactions

import "context"

// Capability is a role token checked before any custom permission resolver.
type Capability string

const (
	// CapabilityManagePlatform is the most privileged capability and the
	// registration default, so actions stay hidden unless explicitly relaxed.
	CapabilityManagePlatform Capability = "manage_platform"
	// CapabilityEditItems allows editing content items.
	CapabilityEditItems Capability = "edit_items"
	// CapabilityEditPrincipals allows managing user accounts.
	CapabilityEditPrincipals Capability = "edit_principals"
	// CapabilityManageTerms allows managing taxonomy terms.
	CapabilityManageTerms Capability = "manage_terms"
	// CapabilityModerateComments allows comment moderation.
	CapabilityModerateComments Capability = "moderate_comments"
	// CapabilityUploadFiles allows managing attachments.
	CapabilityUploadFiles Capability = "upload_files"
)

// CapabilityChecker reports whether the current viewer holds a capability for
// an object. The host resolves one per request from its session state.
type CapabilityChecker interface {
	Can(ctx context.Context, capability Capability, objectID int64) bool
}

// Options is the free-form payload the client forwards to an async callback.
type Options map[string]any

// Outcome is the structured result of an async callback. Signal fields are
// forwarded to the presentation layer untouched; the handler only injects a
// default message when Message is empty.
type Outcome struct {
	// Message is shown to the operator after the action completes.
	Message string
	// Reload asks the client to reload the listing page.
	Reload bool
	// Redirect sends the client to another URL.
	Redirect string
	// RemoveRow asks the client to drop the row from the table.
	RemoveRow bool
	// ReplaceRowHTML swaps the row markup in place.
	ReplaceRowHTML string
	// Fields carries caller-defined pass-through values, including
	// business-level failure signals the core does not interpret.
	Fields map[string]any
}

// Callback runs an asynchronous row action against one object.
type Callback func(ctx context.Context, objectID int64, opts Options) (Outcome, error)

// Target selects how an action link resolves. Exactly one variant applies per
// definition; a nil target renders an inert "#" link.
type Target interface {
	isTarget()
}

// StaticURL links to a fixed URL with the object id appended as a query
// parameter at render time.
type StaticURL string

func (StaticURL) isTarget() {}

// URLResolver computes the link URL from the object id at render time.
type URLResolver func(objectID int64) string

func (URLResolver) isTarget() {}

// AsyncCallback marks the action as asynchronous and names the callback the
// async handler invokes.
type AsyncCallback Callback

func (AsyncCallback) isTarget() {}

// Permission gates whether one viewer sees and may run an action. The
// closed set of variants is matched exhaustively at render and dispatch time.
type Permission interface {
	isPermission()
}

// AllowAll permits every viewer. Use only for actions that are safe without
// any capability.
type AllowAll struct{}

func (AllowAll) isPermission() {}

// AllowCapability permits viewers holding the capability.
type AllowCapability struct {
	Capability Capability
}

func (AllowCapability) isPermission() {}

// AllowResolver permits viewers holding the capability whose resolver also
// approves the specific object. The capability check runs first; both gates
// must pass.
type AllowResolver struct {
	Capability Capability
	Resolver   func(ctx context.Context, objectID int64) bool
}

func (AllowResolver) isPermission() {}

type positionRelation int

const (
	positionAppend positionRelation = iota
	positionAfter
	positionBefore
)

// Position controls where a rendered action lands relative to the host's
// existing action keys. The zero value appends at the end.
type Position struct {
	relation positionRelation
	refKey   string
}

// After places the action immediately after refKey, or at the end when the
// reference action is absent from the host list.
func After(refKey string) Position {
	return Position{relation: positionAfter, refKey: refKey}
}

// Before places the action immediately before refKey, or at the start when
// the reference action is absent.
func Before(refKey string) Position {
	return Position{relation: positionBefore, refKey: refKey}
}

// Definition is one configured row action.
type Definition struct {
	// Key is unique within a (kind, subkind) pair. Required.
	Key string
	// Label is the static link text. LabelFunc wins when both are set.
	Label string
	// LabelFunc computes the link text from the object id.
	LabelFunc func(objectID int64) string
	// Target resolves the link. Nil renders an inert "#" link.
	Target Target
	// Position places the rendered action in the host list.
	Position Position
	// Permission gates visibility and async execution. Nil defaults to
	// AllowCapability{CapabilityManagePlatform}.
	Permission Permission
	// Confirm is shown by the client before an async action runs.
	Confirm string
	// CSSClass is appended to the anchor class list.
	CSSClass string
	// LinkTarget sets the anchor target attribute for URL actions.
	LinkTarget string
	// Icon names a glyph rendered before the label.
	Icon string
}

// async reports whether the definition dispatches through the async handler
// and returns its callback.
func (d Definition) async() (Callback, bool) {
	if cb, ok := d.Target.(AsyncCallback); ok {
		return Callback(cb), true
	}
	return nil, false
}

// allowed evaluates the definition's permission for one viewer and object.
// It fails closed: a nil checker denies everything but AllowAll.
func (d Definition) allowed(ctx context.Context, checker CapabilityChecker, objectID int64) bool {
	switch perm := d.Permission.(type) {
	case AllowAll:
		return true
	case AllowCapability:
		return checker != nil && checker.Can(ctx, perm.Capability, objectID)
	case AllowResolver:
		if checker == nil || !checker.Can(ctx, perm.Capability, objectID) {
			return false
		}
		return perm.Resolver != nil && perm.Resolver(ctx, objectID)
	default:
		return false
	}
}
