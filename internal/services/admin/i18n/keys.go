package i18n

// Message keys shared between handlers and templates. Translations live in
// the per-language catalog files.
const (
	// NavTitleKey labels the admin surface in the layout header.
	NavTitleKey = "admin.nav.title"
	// NavItemsKey labels the content items listing link.
	NavItemsKey = "admin.nav.items"
	// NavPrincipalsKey labels the user accounts listing link.
	NavPrincipalsKey = "admin.nav.principals"
	// NavTermsKey labels the taxonomy terms listing link.
	NavTermsKey = "admin.nav.terms"
	// NavCommentsKey labels the comments listing link.
	NavCommentsKey = "admin.nav.comments"
	// NavAttachmentsKey labels the attachments listing link.
	NavAttachmentsKey = "admin.nav.attachments"

	// ColumnTitleKey labels the item title column.
	ColumnTitleKey = "admin.column.title"
	// ColumnStatusKey labels status columns.
	ColumnStatusKey = "admin.column.status"
	// ColumnUpdatedKey labels the item updated column.
	ColumnUpdatedKey = "admin.column.updated"
	// ColumnNameKey labels name columns.
	ColumnNameKey = "admin.column.name"
	// ColumnEmailKey labels the principal email column.
	ColumnEmailKey = "admin.column.email"
	// ColumnRoleKey labels the principal role column.
	ColumnRoleKey = "admin.column.role"
	// ColumnTaxonomyKey labels the term taxonomy column.
	ColumnTaxonomyKey = "admin.column.taxonomy"
	// ColumnCountKey labels the term usage count column.
	ColumnCountKey = "admin.column.count"
	// ColumnAuthorKey labels the comment author column.
	ColumnAuthorKey = "admin.column.author"
	// ColumnExcerptKey labels the comment excerpt column.
	ColumnExcerptKey = "admin.column.excerpt"
	// ColumnFileKey labels the attachment file name column.
	ColumnFileKey = "admin.column.file"
	// ColumnTypeKey labels the attachment mime type column.
	ColumnTypeKey = "admin.column.type"
	// ColumnSizeKey labels the attachment size column.
	ColumnSizeKey = "admin.column.size"
	// ColumnActionsKey labels the row actions column.
	ColumnActionsKey = "admin.column.actions"

	// EmptyListingKey is shown when a listing has no rows.
	EmptyListingKey = "admin.listing.empty"
)
