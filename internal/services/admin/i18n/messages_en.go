package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, NavTitleKey, "Admin")
	message.SetString(lang, NavItemsKey, "Items")
	message.SetString(lang, NavPrincipalsKey, "Users")
	message.SetString(lang, NavTermsKey, "Terms")
	message.SetString(lang, NavCommentsKey, "Comments")
	message.SetString(lang, NavAttachmentsKey, "Media")

	message.SetString(lang, ColumnTitleKey, "Title")
	message.SetString(lang, ColumnStatusKey, "Status")
	message.SetString(lang, ColumnUpdatedKey, "Updated")
	message.SetString(lang, ColumnNameKey, "Name")
	message.SetString(lang, ColumnEmailKey, "Email")
	message.SetString(lang, ColumnRoleKey, "Role")
	message.SetString(lang, ColumnTaxonomyKey, "Taxonomy")
	message.SetString(lang, ColumnCountKey, "Count")
	message.SetString(lang, ColumnAuthorKey, "Author")
	message.SetString(lang, ColumnExcerptKey, "Comment")
	message.SetString(lang, ColumnFileKey, "File")
	message.SetString(lang, ColumnTypeKey, "Type")
	message.SetString(lang, ColumnSizeKey, "Size")
	message.SetString(lang, ColumnActionsKey, "Actions")

	message.SetString(lang, EmptyListingKey, "Nothing to show yet.")
}
