// Package seed loads demo listing rows into the admin database so the row
// actions can be exercised against realistic tables.
package seed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/louisbranch/rowactions/internal/services/admin/storage"
)

// Config holds seeding inputs.
type Config struct {
	// Verbose echoes each inserted row to the output writer.
	Verbose bool
}

var demoItems = []storage.Item{
	{Subkind: "article", Title: "Welcome to the new dashboard", Status: "published"},
	{Subkind: "article", Title: "Quarterly metrics roundup", Status: "draft"},
	{Subkind: "page", Title: "About", Status: "published"},
}

var demoPrincipals = []storage.Principal{
	{DisplayName: "Dana Operator", Email: "dana@example.com", Role: "administrator"},
	{DisplayName: "Riley Writer", Email: "riley@example.com", Role: "editor"},
	{DisplayName: "Morgan Mod", Email: "morgan@example.com", Role: "moderator"},
}

var demoTerms = []storage.Term{
	{Taxonomy: "category", Name: "News", Slug: "news", Count: 14},
	{Taxonomy: "category", Name: "Releases", Slug: "releases", Count: 6},
	{Taxonomy: "tag", Name: "howto", Slug: "howto", Count: 21},
}

var demoComments = []storage.Comment{
	{Author: "sam", Excerpt: "Great writeup, thanks!", Status: "pending"},
	{Author: "alex", Excerpt: "Link in the second paragraph is broken.", Status: "pending"},
	{Author: "spambot", Excerpt: "Cheap watches!!!", Status: "pending"},
}

var demoAttachments = []storage.Attachment{
	{FileName: "hero.png", MimeType: "image/png", SizeKB: 420},
	{FileName: "roadmap.pdf", MimeType: "application/pdf", SizeKB: 1180},
}

// Run inserts the demo fixtures through the store.
func Run(ctx context.Context, cfg Config, store storage.Store, out io.Writer) error {
	if store == nil {
		return fmt.Errorf("store is required")
	}
	if out == nil {
		out = io.Discard
	}

	now := time.Now().UTC()
	for i, item := range demoItems {
		item.UpdatedAt = now.Add(-time.Duration(i) * time.Hour)
		id, err := store.CreateItem(ctx, item)
		if err != nil {
			return fmt.Errorf("seed item %q: %w", item.Title, err)
		}
		logRow(cfg, out, "item", id, item.Title)
	}
	for _, principal := range demoPrincipals {
		id, err := store.CreatePrincipal(ctx, principal)
		if err != nil {
			return fmt.Errorf("seed principal %q: %w", principal.DisplayName, err)
		}
		logRow(cfg, out, "principal", id, principal.DisplayName)
	}
	for _, term := range demoTerms {
		id, err := store.CreateTerm(ctx, term)
		if err != nil {
			return fmt.Errorf("seed term %q: %w", term.Name, err)
		}
		logRow(cfg, out, "term", id, term.Name)
	}
	for _, comment := range demoComments {
		id, err := store.CreateComment(ctx, comment)
		if err != nil {
			return fmt.Errorf("seed comment by %q: %w", comment.Author, err)
		}
		logRow(cfg, out, "comment", id, comment.Author)
	}
	for _, attachment := range demoAttachments {
		id, err := store.CreateAttachment(ctx, attachment)
		if err != nil {
			return fmt.Errorf("seed attachment %q: %w", attachment.FileName, err)
		}
		logRow(cfg, out, "attachment", id, attachment.FileName)
	}

	fmt.Fprintf(out, "seeded %d items, %d principals, %d terms, %d comments, %d attachments\n",
		len(demoItems), len(demoPrincipals), len(demoTerms), len(demoComments), len(demoAttachments))
	return nil
}

func logRow(cfg Config, out io.Writer, kind string, id int64, label string) {
	if !cfg.Verbose {
		return
	}
	fmt.Fprintf(out, "%s %d: %s\n", kind, id, label)
}
