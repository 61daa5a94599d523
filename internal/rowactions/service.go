package rowactions

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"

	apperrors "github.com/louisbranch/rowactions/internal/platform/errors"
)

// RegisterInput is the registration call contract consumed by integrators.
// One binding is created per subkind; a subkind-less registration binds the
// kind's default subkind.
type RegisterInput struct {
	// Kind selects the listing the actions attach to. Required.
	Kind Kind
	// Subkinds narrows the registration to specific listing subtypes. An
	// empty slice binds the default subkind.
	Subkinds []string
	// Actions are registered in order; a definition that fails validation
	// is logged and skipped without aborting its siblings.
	Actions []Definition
	// RemoveKeys names host default actions stripped from every row of the
	// bound listings.
	RemoveKeys []string
}

// ListingHook augments the host-supplied action list for one listing row.
type ListingHook func(ctx context.Context, checker CapabilityChecker, subkind string, objectID int64, existing *HostList) *HostList

// Host receives the wired hook points during activation. The admin surface
// implements it; the core never routes requests itself.
type Host interface {
	// MountListingHook attaches the row augmentation hook for one kind.
	MountListingHook(kind Kind, name string, hook ListingHook)
	// MountAsyncHook attaches the async action endpoint for one kind.
	MountAsyncHook(kind Kind, name string, handler http.Handler)
	// MountAssets attaches the client script handler once per process.
	MountAssets(handler http.Handler)
}

// Service owns the registry, token service, renderer, and bindings, and
// drives the two-phase startup: RegisterActions during configuration, then
// Activate exactly once from the composition root.
type Service struct {
	registry *Registry
	tokens   *Tokens
	renderer *Renderer

	mu        sync.Mutex
	bindings  map[Kind][]*Binding
	activated bool
}

// NewService builds a service around an injectable registry and token
// service.
func NewService(registry *Registry, tokens *Tokens) *Service {
	return &Service{
		registry: registry,
		tokens:   tokens,
		renderer: NewRenderer(registry, tokens),
		bindings: make(map[Kind][]*Binding),
	}
}

// Registry exposes the underlying registry for lookups.
func (s *Service) Registry() *Registry {
	return s.registry
}

// RegisterActions validates and stores the input's actions and returns one
// binding per subkind. Invalid registrations are logged and skipped so one
// bad definition never takes down its siblings.
func (s *Service) RegisterActions(in RegisterInput) []*Binding {
	if !in.Kind.Valid() {
		err := apperrors.New(apperrors.CodeBindingKindMissing, "register actions: object kind is required")
		log.Printf("rowactions: %v", err)
		return nil
	}

	subkinds := in.Subkinds
	if len(subkinds) == 0 {
		subkinds = []string{""}
	}

	bindings := make([]*Binding, 0, len(subkinds))
	for _, subkind := range subkinds {
		for _, def := range in.Actions {
			if err := s.registry.Register(in.Kind, subkind, def); err != nil {
				log.Printf("rowactions: register %s/%s/%s: %v", in.Kind, subkind, def.Key, err)
			}
		}
		binding := newBinding(in.Kind, subkind, in.RemoveKeys)
		bindings = append(bindings, binding)

		s.mu.Lock()
		s.bindings[in.Kind] = append(s.bindings[in.Kind], binding)
		s.mu.Unlock()
	}
	return bindings
}

// Activate wires every bound kind's listing and async hook points into the
// host. It must be called exactly once, after all registrations exist.
func (s *Service) Activate(host Host, resolveChecker func(*http.Request) CapabilityChecker) error {
	if host == nil {
		return errors.New("activate: host is required")
	}
	s.mu.Lock()
	if s.activated {
		s.mu.Unlock()
		return errors.New("activate: already activated")
	}
	s.activated = true
	bound := make(map[Kind][]*Binding, len(s.bindings))
	for kind, bindings := range s.bindings {
		bound[kind] = append([]*Binding(nil), bindings...)
	}
	s.mu.Unlock()

	for kind, bindings := range bound {
		host.MountListingHook(kind, kind.ListingHookName(), s.listingHook(bindings))
		host.MountAsyncHook(kind, kind.AsyncHookName(), s.asyncHandler(kind, resolveChecker))
	}
	host.MountAssets(AssetsHandler())
	return nil
}

// listingHook dispatches a row render to the binding matching the row's
// subkind. Rows of an unbound subkind pass through unchanged.
func (s *Service) listingHook(bindings []*Binding) ListingHook {
	return func(ctx context.Context, checker CapabilityChecker, subkind string, objectID int64, existing *HostList) *HostList {
		for _, binding := range bindings {
			if binding.Subkind() == subkind {
				return s.renderer.Render(ctx, checker, binding, objectID, existing)
			}
		}
		return existing
	}
}

func (s *Service) asyncHandler(kind Kind, resolveChecker func(*http.Request) CapabilityChecker) http.Handler {
	return NewAsyncHandler(s.registry, s.tokens, kind, resolveChecker)
}
