package admin

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/louisbranch/rowactions/internal/rowactions"
	admini18n "github.com/louisbranch/rowactions/internal/services/admin/i18n"
	"github.com/louisbranch/rowactions/internal/services/admin/hooks"
	"github.com/louisbranch/rowactions/internal/services/admin/routepath"
	"github.com/louisbranch/rowactions/internal/services/admin/storage"
	"github.com/louisbranch/rowactions/internal/services/admin/templates"
)

// Handler serves the admin listing pages and hosts the row action hook
// points. It implements rowactions.Host so Activate can wire the listing
// hooks, async endpoints, and client assets into the mux.
type Handler struct {
	mux         *http.ServeMux
	store       storage.Store
	defaultRole Role

	mu           sync.RWMutex
	listingHooks map[rowactions.Kind][]rowactions.ListingHook
}

// NewHandler builds the admin HTTP handler over the given store.
func NewHandler(store storage.Store, defaultRole Role) *Handler {
	h := &Handler{
		mux:          http.NewServeMux(),
		store:        store,
		defaultRole:  defaultRole,
		listingHooks: make(map[rowactions.Kind][]rowactions.ListingHook),
	}

	h.mux.Handle(routepath.Root, http.HandlerFunc(h.handleRoot))
	h.mux.Handle(routepath.Items, http.HandlerFunc(h.handleItemsPage))
	h.mux.Handle(routepath.Principals, http.HandlerFunc(h.handlePrincipalsPage))
	h.mux.Handle(routepath.Terms, http.HandlerFunc(h.handleTermsPage))
	h.mux.Handle(routepath.Comments, http.HandlerFunc(h.handleCommentsPage))
	h.mux.Handle(routepath.Attachments, http.HandlerFunc(h.handleAttachmentsPage))
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// MountListingHook implements rowactions.Host.
func (h *Handler) MountListingHook(kind rowactions.Kind, name string, hook rowactions.ListingHook) {
	if hook == nil {
		return
	}
	h.mu.Lock()
	h.listingHooks[kind] = append(h.listingHooks[kind], hook)
	h.mu.Unlock()
	log.Printf("admin: mounted listing hook %s", name)
}

// MountAsyncHook implements rowactions.Host. Dispatch requires a same-origin
// POST on top of the token check the handler itself performs.
func (h *Handler) MountAsyncHook(kind rowactions.Kind, name string, handler http.Handler) {
	if handler == nil {
		return
	}
	h.mux.Handle(routepath.ActionsRun(string(kind)), requireSameOrigin(handler))
	log.Printf("admin: mounted async hook %s", name)
}

// MountAssets implements rowactions.Host.
func (h *Handler) MountAssets(handler http.Handler) {
	if handler == nil {
		return
	}
	h.mux.Handle(routepath.AssetsPrefix, http.StripPrefix(routepath.AssetsPrefix, handler))
}

// requireSameOrigin rejects cross-origin POSTs before they reach the async
// dispatch endpoint. Requests without an Origin header pass through so
// non-browser clients keep working against the token check.
func requireSameOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin := strings.TrimSpace(r.Header.Get("Origin")); origin != "" {
			parsed, err := url.Parse(origin)
			if err != nil || parsed.Host != r.Host {
				http.Error(w, "cross-origin request rejected", http.StatusForbidden)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != routepath.Root {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, routepath.Items, http.StatusFound)
}

// rowActions runs the mounted listing hooks for one row and joins the
// rendered anchors. A row with no hooks keeps the host defaults.
func (h *Handler) rowActions(ctx context.Context, r *http.Request, ref hooks.RowRef) string {
	list := hooks.Defaults(ref)

	h.mu.RLock()
	mounted := h.listingHooks[ref.Kind]
	h.mu.RUnlock()

	checker := CheckerForRequest(r, h.defaultRole)
	for _, hook := range mounted {
		list = hook(ctx, checker, ref.Subkind, ref.ObjectID, list)
	}

	parts := make([]string, 0, list.Len())
	for _, entry := range list.Entries() {
		parts = append(parts, entry.Value)
	}
	return strings.Join(parts, " | ")
}

// localizer resolves the request language and persists an explicit choice.
func (h *Handler) localizer(w http.ResponseWriter, r *http.Request) (templates.Localizer, language.Tag) {
	tag, persist := admini18n.ResolveTag(r)
	if persist {
		admini18n.SetLanguageCookie(w, tag)
	}
	return admini18n.Printer(tag), tag
}

func (h *Handler) pageContext(lang language.Tag, loc templates.Localizer, r *http.Request) templates.PageContext {
	return templates.PageContext{
		Lang:         lang.String(),
		Loc:          loc,
		CurrentPath:  r.URL.Path,
		CurrentQuery: r.URL.RawQuery,
	}
}

func (h *Handler) handleItemsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	items, err := h.store.ListItems(r.Context())
	if err != nil {
		log.Printf("list items: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}

	view := templates.ListingView{
		Heading:      templates.PageHeading{Title: loc.Sprintf(admini18n.NavItemsKey)},
		Columns:      []string{loc.Sprintf(admini18n.ColumnTitleKey), loc.Sprintf(admini18n.ColumnStatusKey), loc.Sprintf(admini18n.ColumnUpdatedKey)},
		ActionsLabel: loc.Sprintf(admini18n.ColumnActionsKey),
		EmptyMessage: loc.Sprintf(admini18n.EmptyListingKey),
	}
	for _, item := range items {
		view.Rows = append(view.Rows, templates.ListingRow{
			ObjectID:    strconv.FormatInt(item.ID, 10),
			Cells:       []string{item.Title, item.Status, item.UpdatedAt.Format("2006-01-02 15:04")},
			ActionsHTML: h.rowActions(r.Context(), r, hooks.ForItem(item)),
		})
	}
	h.renderListing(w, r, pageCtx, view)
}

func (h *Handler) handlePrincipalsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	principals, err := h.store.ListPrincipals(r.Context())
	if err != nil {
		log.Printf("list principals: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}

	view := templates.ListingView{
		Heading:      templates.PageHeading{Title: loc.Sprintf(admini18n.NavPrincipalsKey)},
		Columns:      []string{loc.Sprintf(admini18n.ColumnNameKey), loc.Sprintf(admini18n.ColumnEmailKey), loc.Sprintf(admini18n.ColumnRoleKey)},
		ActionsLabel: loc.Sprintf(admini18n.ColumnActionsKey),
		EmptyMessage: loc.Sprintf(admini18n.EmptyListingKey),
	}
	for _, principal := range principals {
		view.Rows = append(view.Rows, templates.ListingRow{
			ObjectID:    strconv.FormatInt(principal.ID, 10),
			Cells:       []string{principal.DisplayName, principal.Email, principal.Role},
			ActionsHTML: h.rowActions(r.Context(), r, hooks.ForPrincipal(principal)),
		})
	}
	h.renderListing(w, r, pageCtx, view)
}

func (h *Handler) handleTermsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	terms, err := h.store.ListTerms(r.Context())
	if err != nil {
		log.Printf("list terms: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}

	view := templates.ListingView{
		Heading:      templates.PageHeading{Title: loc.Sprintf(admini18n.NavTermsKey)},
		Columns:      []string{loc.Sprintf(admini18n.ColumnNameKey), loc.Sprintf(admini18n.ColumnTaxonomyKey), loc.Sprintf(admini18n.ColumnCountKey)},
		ActionsLabel: loc.Sprintf(admini18n.ColumnActionsKey),
		EmptyMessage: loc.Sprintf(admini18n.EmptyListingKey),
	}
	for _, term := range terms {
		view.Rows = append(view.Rows, templates.ListingRow{
			ObjectID:    strconv.FormatInt(term.ID, 10),
			Cells:       []string{term.Name, term.Taxonomy, strconv.Itoa(term.Count)},
			ActionsHTML: h.rowActions(r.Context(), r, hooks.ForTerm(term)),
		})
	}
	h.renderListing(w, r, pageCtx, view)
}

func (h *Handler) handleCommentsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	comments, err := h.store.ListComments(r.Context())
	if err != nil {
		log.Printf("list comments: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}

	view := templates.ListingView{
		Heading:      templates.PageHeading{Title: loc.Sprintf(admini18n.NavCommentsKey)},
		Columns:      []string{loc.Sprintf(admini18n.ColumnAuthorKey), loc.Sprintf(admini18n.ColumnExcerptKey), loc.Sprintf(admini18n.ColumnStatusKey)},
		ActionsLabel: loc.Sprintf(admini18n.ColumnActionsKey),
		EmptyMessage: loc.Sprintf(admini18n.EmptyListingKey),
	}
	for _, comment := range comments {
		view.Rows = append(view.Rows, templates.ListingRow{
			ObjectID:    strconv.FormatInt(comment.ID, 10),
			Cells:       []string{comment.Author, comment.Excerpt, comment.Status},
			ActionsHTML: h.rowActions(r.Context(), r, hooks.ForComment(comment)),
		})
	}
	h.renderListing(w, r, pageCtx, view)
}

func (h *Handler) handleAttachmentsPage(w http.ResponseWriter, r *http.Request) {
	loc, lang := h.localizer(w, r)
	pageCtx := h.pageContext(lang, loc, r)

	attachments, err := h.store.ListAttachments(r.Context())
	if err != nil {
		log.Printf("list attachments: %v", err)
		http.Error(w, "storage unavailable", http.StatusInternalServerError)
		return
	}

	view := templates.ListingView{
		Heading:      templates.PageHeading{Title: loc.Sprintf(admini18n.NavAttachmentsKey)},
		Columns:      []string{loc.Sprintf(admini18n.ColumnFileKey), loc.Sprintf(admini18n.ColumnTypeKey), loc.Sprintf(admini18n.ColumnSizeKey)},
		ActionsLabel: loc.Sprintf(admini18n.ColumnActionsKey),
		EmptyMessage: loc.Sprintf(admini18n.EmptyListingKey),
	}
	for _, attachment := range attachments {
		view.Rows = append(view.Rows, templates.ListingRow{
			ObjectID:    strconv.FormatInt(attachment.ID, 10),
			Cells:       []string{attachment.FileName, attachment.MimeType, strconv.FormatInt(attachment.SizeKB, 10) + " KB"},
			ActionsHTML: h.rowActions(r.Context(), r, hooks.ForAttachment(attachment)),
		})
	}
	h.renderListing(w, r, pageCtx, view)
}

func (h *Handler) renderListing(w http.ResponseWriter, r *http.Request, pageCtx templates.PageContext, view templates.ListingView) {
	templ.Handler(templates.Layout(pageCtx, view.Heading.Title, templates.ListingTable(view))).ServeHTTP(w, r)
}
