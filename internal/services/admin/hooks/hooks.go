// Package hooks bridges admin listing rows to the row action hook points.
//
// Each object kind gets an adapter that extracts the (kind, subkind, id)
// tuple the hooks dispatch on, plus the host's baseline action list the
// registered actions splice into.
package hooks

import (
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/rowactions/internal/rowactions"
	"github.com/louisbranch/rowactions/internal/services/admin/routepath"
	"github.com/louisbranch/rowactions/internal/services/admin/storage"
	"github.com/louisbranch/rowactions/internal/services/admin/templates"
)

// RowRef identifies one listing row for hook dispatch.
type RowRef struct {
	Kind     rowactions.Kind
	Subkind  string
	ObjectID int64
}

// ForItem adapts a content item row.
func ForItem(item storage.Item) RowRef {
	return RowRef{Kind: rowactions.KindItem, Subkind: item.Subkind, ObjectID: item.ID}
}

// ForPrincipal adapts a user account row.
func ForPrincipal(principal storage.Principal) RowRef {
	return RowRef{Kind: rowactions.KindPrincipal, ObjectID: principal.ID}
}

// ForTerm adapts a taxonomy term row. The taxonomy acts as the subkind.
func ForTerm(term storage.Term) RowRef {
	return RowRef{Kind: rowactions.KindTerm, Subkind: term.Taxonomy, ObjectID: term.ID}
}

// ForComment adapts a comment row.
func ForComment(comment storage.Comment) RowRef {
	return RowRef{Kind: rowactions.KindComment, ObjectID: comment.ID}
}

// ForAttachment adapts an attachment row.
func ForAttachment(attachment storage.Attachment) RowRef {
	return RowRef{Kind: rowactions.KindAttachment, ObjectID: attachment.ID}
}

var listingPaths = map[rowactions.Kind]string{
	rowactions.KindItem:       routepath.Items,
	rowactions.KindPrincipal:  routepath.Principals,
	rowactions.KindTerm:       routepath.Terms,
	rowactions.KindComment:    routepath.Comments,
	rowactions.KindAttachment: routepath.Attachments,
}

// Defaults returns the host's baseline action list for one row. Registered
// actions splice around these keys.
func Defaults(ref RowRef) *rowactions.HostList {
	base := listingPaths[ref.Kind]
	id := strconv.FormatInt(ref.ObjectID, 10)

	list := &rowactions.HostList{}
	list.Set("edit", anchor(templates.AppendQueryParam(base+"/edit", "id", id), "Edit"))
	list.Set("delete", anchor(templates.AppendQueryParam(base+"/delete", "id", id), "Delete"))
	return list
}

func anchor(href, label string) string {
	return `<a href="` + templ.EscapeString(href) + `">` + templ.EscapeString(label) + `</a>`
}
