package templates

import (
	"net/url"

	admini18n "github.com/louisbranch/rowactions/internal/services/admin/i18n"
	"golang.org/x/text/language"
)

// LanguageOption represents a supported language option in the admin UI.
type LanguageOption struct {
	Tag    string
	Label  string
	Active bool
}

var languageLabels = map[string]string{
	"en":    "English",
	"pt-BR": "Português (Brasil)",
}

// LanguageOptions returns supported language options with active selection.
func LanguageOptions(page PageContext) []LanguageOption {
	activeTag := normalizeTag(page.Lang)
	options := make([]LanguageOption, 0, len(admini18n.Supported()))
	for _, tag := range admini18n.Supported() {
		label := languageLabels[tag.String()]
		if label == "" {
			label = tag.String()
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			Active: tag == activeTag,
		})
	}
	return options
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(page PageContext, tag string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set(admini18n.LangParam, tag)
	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}

// normalizeTag coerces unknown tags to the default supported language.
func normalizeTag(value string) language.Tag {
	parsed, err := language.Parse(value)
	if err != nil {
		return admini18n.Default()
	}
	for _, tag := range admini18n.Supported() {
		if tag.String() == parsed.String() {
			return tag
		}
	}
	return admini18n.Default()
}
