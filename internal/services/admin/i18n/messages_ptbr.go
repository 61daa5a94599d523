package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, NavTitleKey, "Administração")
	message.SetString(lang, NavItemsKey, "Itens")
	message.SetString(lang, NavPrincipalsKey, "Usuários")
	message.SetString(lang, NavTermsKey, "Termos")
	message.SetString(lang, NavCommentsKey, "Comentários")
	message.SetString(lang, NavAttachmentsKey, "Mídia")

	message.SetString(lang, ColumnTitleKey, "Título")
	message.SetString(lang, ColumnStatusKey, "Status")
	message.SetString(lang, ColumnUpdatedKey, "Atualizado")
	message.SetString(lang, ColumnNameKey, "Nome")
	message.SetString(lang, ColumnEmailKey, "Email")
	message.SetString(lang, ColumnRoleKey, "Função")
	message.SetString(lang, ColumnTaxonomyKey, "Taxonomia")
	message.SetString(lang, ColumnCountKey, "Contagem")
	message.SetString(lang, ColumnAuthorKey, "Autor")
	message.SetString(lang, ColumnExcerptKey, "Comentário")
	message.SetString(lang, ColumnFileKey, "Arquivo")
	message.SetString(lang, ColumnTypeKey, "Tipo")
	message.SetString(lang, ColumnSizeKey, "Tamanho")
	message.SetString(lang, ColumnActionsKey, "Ações")

	message.SetString(lang, EmptyListingKey, "Nada para exibir ainda.")
}
