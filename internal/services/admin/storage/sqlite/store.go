package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/rowactions/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/rowactions/internal/services/admin/storage"
	"github.com/louisbranch/rowactions/internal/services/admin/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

const timeFormat = time.RFC3339Nano

// Store provides a SQLite-backed store implementing admin storage interfaces.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite store at the provided path and applies embedded
// migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return nil
}

// ListItems returns every content item ordered by id.
func (s *Store) ListItems(ctx context.Context) ([]storage.Item, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, subkind, title, status, updated_at FROM items ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []storage.Item
	for rows.Next() {
		var item storage.Item
		var updatedAt string
		if err := rows.Scan(&item.ID, &item.Subkind, &item.Title, &item.Status, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItem returns one content item.
func (s *Store) GetItem(ctx context.Context, id int64) (storage.Item, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Item{}, err
	}
	var item storage.Item
	var updatedAt string
	row := s.sqlDB.QueryRowContext(ctx, "SELECT id, subkind, title, status, updated_at FROM items WHERE id = ?", id)
	if err := row.Scan(&item.ID, &item.Subkind, &item.Title, &item.Status, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Item{}, storage.ErrNotFound
		}
		return storage.Item{}, fmt.Errorf("get item: %w", err)
	}
	item.UpdatedAt, _ = time.Parse(timeFormat, updatedAt)
	return item, nil
}

// UpdateItemStatus sets one item's status and bumps its updated timestamp.
func (s *Store) UpdateItemStatus(ctx context.Context, id int64, status string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("status is required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"UPDATE items SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now().UTC().Format(timeFormat), id)
	if err != nil {
		return fmt.Errorf("update item status: %w", err)
	}
	return requireAffectedRow(result)
}

// CreateItem inserts one content item and returns its id.
func (s *Store) CreateItem(ctx context.Context, item storage.Item) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(item.Title) == "" {
		return 0, fmt.Errorf("title is required")
	}
	updatedAt := item.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	status := item.Status
	if status == "" {
		status = "draft"
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO items (subkind, title, status, updated_at) VALUES (?, ?, ?, ?)",
		item.Subkind, item.Title, status, updatedAt.Format(timeFormat))
	if err != nil {
		return 0, fmt.Errorf("create item: %w", err)
	}
	return result.LastInsertId()
}

// ListPrincipals returns every user account ordered by id.
func (s *Store) ListPrincipals(ctx context.Context) ([]storage.Principal, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, display_name, email, role FROM principals ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list principals: %w", err)
	}
	defer rows.Close()

	var principals []storage.Principal
	for rows.Next() {
		var principal storage.Principal
		if err := rows.Scan(&principal.ID, &principal.DisplayName, &principal.Email, &principal.Role); err != nil {
			return nil, fmt.Errorf("scan principal: %w", err)
		}
		principals = append(principals, principal)
	}
	return principals, rows.Err()
}

// GetPrincipal returns one user account.
func (s *Store) GetPrincipal(ctx context.Context, id int64) (storage.Principal, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Principal{}, err
	}
	var principal storage.Principal
	row := s.sqlDB.QueryRowContext(ctx, "SELECT id, display_name, email, role FROM principals WHERE id = ?", id)
	if err := row.Scan(&principal.ID, &principal.DisplayName, &principal.Email, &principal.Role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Principal{}, storage.ErrNotFound
		}
		return storage.Principal{}, fmt.Errorf("get principal: %w", err)
	}
	return principal, nil
}

// CreatePrincipal inserts one user account and returns its id.
func (s *Store) CreatePrincipal(ctx context.Context, principal storage.Principal) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(principal.DisplayName) == "" {
		return 0, fmt.Errorf("display name is required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO principals (display_name, email, role) VALUES (?, ?, ?)",
		principal.DisplayName, principal.Email, principal.Role)
	if err != nil {
		return 0, fmt.Errorf("create principal: %w", err)
	}
	return result.LastInsertId()
}

// ListTerms returns every taxonomy term ordered by id.
func (s *Store) ListTerms(ctx context.Context) ([]storage.Term, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, taxonomy, name, slug, count FROM terms ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	var terms []storage.Term
	for rows.Next() {
		var term storage.Term
		if err := rows.Scan(&term.ID, &term.Taxonomy, &term.Name, &term.Slug, &term.Count); err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, term)
	}
	return terms, rows.Err()
}

// GetTerm returns one taxonomy term.
func (s *Store) GetTerm(ctx context.Context, id int64) (storage.Term, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Term{}, err
	}
	var term storage.Term
	row := s.sqlDB.QueryRowContext(ctx, "SELECT id, taxonomy, name, slug, count FROM terms WHERE id = ?", id)
	if err := row.Scan(&term.ID, &term.Taxonomy, &term.Name, &term.Slug, &term.Count); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Term{}, storage.ErrNotFound
		}
		return storage.Term{}, fmt.Errorf("get term: %w", err)
	}
	return term, nil
}

// ResetTermCount zeroes one term's usage counter.
func (s *Store) ResetTermCount(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	result, err := s.sqlDB.ExecContext(ctx, "UPDATE terms SET count = 0 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("reset term count: %w", err)
	}
	return requireAffectedRow(result)
}

// CreateTerm inserts one taxonomy term and returns its id.
func (s *Store) CreateTerm(ctx context.Context, term storage.Term) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(term.Name) == "" {
		return 0, fmt.Errorf("name is required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO terms (taxonomy, name, slug, count) VALUES (?, ?, ?, ?)",
		term.Taxonomy, term.Name, term.Slug, term.Count)
	if err != nil {
		return 0, fmt.Errorf("create term: %w", err)
	}
	return result.LastInsertId()
}

// ListComments returns every comment ordered by id.
func (s *Store) ListComments(ctx context.Context) ([]storage.Comment, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, author, excerpt, status FROM comments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []storage.Comment
	for rows.Next() {
		var comment storage.Comment
		if err := rows.Scan(&comment.ID, &comment.Author, &comment.Excerpt, &comment.Status); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	return comments, rows.Err()
}

// GetComment returns one comment.
func (s *Store) GetComment(ctx context.Context, id int64) (storage.Comment, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Comment{}, err
	}
	var comment storage.Comment
	row := s.sqlDB.QueryRowContext(ctx, "SELECT id, author, excerpt, status FROM comments WHERE id = ?", id)
	if err := row.Scan(&comment.ID, &comment.Author, &comment.Excerpt, &comment.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Comment{}, storage.ErrNotFound
		}
		return storage.Comment{}, fmt.Errorf("get comment: %w", err)
	}
	return comment, nil
}

// UpdateCommentStatus sets one comment's moderation status.
func (s *Store) UpdateCommentStatus(ctx context.Context, id int64, status string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(status) == "" {
		return fmt.Errorf("status is required")
	}
	result, err := s.sqlDB.ExecContext(ctx, "UPDATE comments SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("update comment status: %w", err)
	}
	return requireAffectedRow(result)
}

// CreateComment inserts one comment and returns its id.
func (s *Store) CreateComment(ctx context.Context, comment storage.Comment) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(comment.Author) == "" {
		return 0, fmt.Errorf("author is required")
	}
	status := comment.Status
	if status == "" {
		status = "pending"
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO comments (author, excerpt, status) VALUES (?, ?, ?)",
		comment.Author, comment.Excerpt, status)
	if err != nil {
		return 0, fmt.Errorf("create comment: %w", err)
	}
	return result.LastInsertId()
}

// ListAttachments returns every attachment ordered by id.
func (s *Store) ListAttachments(ctx context.Context) ([]storage.Attachment, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, file_name, mime_type, size_kb FROM attachments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list attachments: %w", err)
	}
	defer rows.Close()

	var attachments []storage.Attachment
	for rows.Next() {
		var attachment storage.Attachment
		if err := rows.Scan(&attachment.ID, &attachment.FileName, &attachment.MimeType, &attachment.SizeKB); err != nil {
			return nil, fmt.Errorf("scan attachment: %w", err)
		}
		attachments = append(attachments, attachment)
	}
	return attachments, rows.Err()
}

// GetAttachment returns one attachment.
func (s *Store) GetAttachment(ctx context.Context, id int64) (storage.Attachment, error) {
	if err := s.ready(ctx); err != nil {
		return storage.Attachment{}, err
	}
	var attachment storage.Attachment
	row := s.sqlDB.QueryRowContext(ctx, "SELECT id, file_name, mime_type, size_kb FROM attachments WHERE id = ?", id)
	if err := row.Scan(&attachment.ID, &attachment.FileName, &attachment.MimeType, &attachment.SizeKB); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Attachment{}, storage.ErrNotFound
		}
		return storage.Attachment{}, fmt.Errorf("get attachment: %w", err)
	}
	return attachment, nil
}

// CreateAttachment inserts one attachment and returns its id.
func (s *Store) CreateAttachment(ctx context.Context, attachment storage.Attachment) (int64, error) {
	if err := s.ready(ctx); err != nil {
		return 0, err
	}
	if strings.TrimSpace(attachment.FileName) == "" {
		return 0, fmt.Errorf("file name is required")
	}
	result, err := s.sqlDB.ExecContext(ctx,
		"INSERT INTO attachments (file_name, mime_type, size_kb) VALUES (?, ?, ?)",
		attachment.FileName, attachment.MimeType, attachment.SizeKB)
	if err != nil {
		return 0, fmt.Errorf("create attachment: %w", err)
	}
	return result.LastInsertId()
}

// SetObjectMeta upserts one metadata value for an object.
func (s *Store) SetObjectMeta(ctx context.Context, kind string, objectID int64, key, value string) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	if strings.TrimSpace(kind) == "" || strings.TrimSpace(key) == "" {
		return fmt.Errorf("kind and key are required")
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO object_meta (kind, object_id, meta_key, meta_value) VALUES (?, ?, ?, ?)
		 ON CONFLICT (kind, object_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value`,
		kind, objectID, key, value)
	if err != nil {
		return fmt.Errorf("set object meta: %w", err)
	}
	return nil
}

// ObjectMeta reads one metadata value for an object.
func (s *Store) ObjectMeta(ctx context.Context, kind string, objectID int64, key string) (string, error) {
	if err := s.ready(ctx); err != nil {
		return "", err
	}
	var value string
	row := s.sqlDB.QueryRowContext(ctx,
		"SELECT meta_value FROM object_meta WHERE kind = ? AND object_id = ? AND meta_key = ?",
		kind, objectID, key)
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", fmt.Errorf("get object meta: %w", err)
	}
	return value, nil
}

func requireAffectedRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

var _ storage.Store = (*Store)(nil)
