package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Item is one generic content item row.
type Item struct {
	ID        int64
	Subkind   string
	Title     string
	Status    string
	UpdatedAt time.Time
}

// Principal is one user account row.
type Principal struct {
	ID          int64
	DisplayName string
	Email       string
	Role        string
}

// Term is one taxonomy term row. Taxonomy is the term listing subkind.
type Term struct {
	ID       int64
	Taxonomy string
	Name     string
	Slug     string
	Count    int
}

// Comment is one comment row.
type Comment struct {
	ID      int64
	Author  string
	Excerpt string
	Status  string
}

// Attachment is one uploaded file row.
type Attachment struct {
	ID       int64
	FileName string
	MimeType string
	SizeKB   int64
}

// ItemStore lists and mutates content items.
type ItemStore interface {
	ListItems(ctx context.Context) ([]Item, error)
	GetItem(ctx context.Context, id int64) (Item, error)
	UpdateItemStatus(ctx context.Context, id int64, status string) error
	CreateItem(ctx context.Context, item Item) (int64, error)
}

// PrincipalStore lists user accounts.
type PrincipalStore interface {
	ListPrincipals(ctx context.Context) ([]Principal, error)
	GetPrincipal(ctx context.Context, id int64) (Principal, error)
	CreatePrincipal(ctx context.Context, principal Principal) (int64, error)
}

// TermStore lists and mutates taxonomy terms.
type TermStore interface {
	ListTerms(ctx context.Context) ([]Term, error)
	GetTerm(ctx context.Context, id int64) (Term, error)
	ResetTermCount(ctx context.Context, id int64) error
	CreateTerm(ctx context.Context, term Term) (int64, error)
}

// CommentStore lists and mutates comments.
type CommentStore interface {
	ListComments(ctx context.Context) ([]Comment, error)
	GetComment(ctx context.Context, id int64) (Comment, error)
	UpdateCommentStatus(ctx context.Context, id int64, status string) error
	CreateComment(ctx context.Context, comment Comment) (int64, error)
}

// AttachmentStore lists attachments.
type AttachmentStore interface {
	ListAttachments(ctx context.Context) ([]Attachment, error)
	GetAttachment(ctx context.Context, id int64) (Attachment, error)
	CreateAttachment(ctx context.Context, attachment Attachment) (int64, error)
}

// ObjectMetaStore is the key-value metadata store async callbacks write to.
type ObjectMetaStore interface {
	SetObjectMeta(ctx context.Context, kind string, objectID int64, key, value string) error
	ObjectMeta(ctx context.Context, kind string, objectID int64, key string) (string, error)
}

// Store is a composite interface for admin storage concerns.
type Store interface {
	ItemStore
	PrincipalStore
	TermStore
	CommentStore
	AttachmentStore
	ObjectMetaStore
	Close() error
}
