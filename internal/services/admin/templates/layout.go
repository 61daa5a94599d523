package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	admini18n "github.com/louisbranch/rowactions/internal/services/admin/i18n"
)

// NavLink is one entry in the layout navigation.
type NavLink struct {
	Label  string
	URL    string
	Active bool
}

// NavLinks returns the listing navigation for the admin layout.
func NavLinks(page PageContext, loc Localizer) []NavLink {
	links := []NavLink{
		{Label: T(loc, admini18n.NavItemsKey), URL: "/items"},
		{Label: T(loc, admini18n.NavPrincipalsKey), URL: "/principals"},
		{Label: T(loc, admini18n.NavTermsKey), URL: "/terms"},
		{Label: T(loc, admini18n.NavCommentsKey), URL: "/comments"},
		{Label: T(loc, admini18n.NavAttachmentsKey), URL: "/attachments"},
	}
	for i := range links {
		links[i].Active = links[i].URL == page.CurrentPath
	}
	return links
}

// Layout renders the admin page shell around the supplied content.
func Layout(page PageContext, title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="`)
		b.WriteString(templ.EscapeString(page.Lang))
		b.WriteString(`"><head><meta charset="utf-8"><title>`)
		b.WriteString(templ.EscapeString(title))
		b.WriteString(`</title>`)
		b.WriteString(`<link rel="stylesheet" href="/assets/rowactions.css">`)
		b.WriteString(`</head><body>`)

		b.WriteString(`<header class="admin-header"><span class="admin-title">`)
		b.WriteString(templ.EscapeString(T(page.Loc, admini18n.NavTitleKey)))
		b.WriteString(`</span><nav>`)
		for _, link := range NavLinks(page, page.Loc) {
			class := "nav-link"
			if link.Active {
				class += " active"
			}
			b.WriteString(`<a class="`)
			b.WriteString(templ.EscapeString(class))
			b.WriteString(`" href="`)
			b.WriteString(templ.EscapeString(link.URL))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(link.Label))
			b.WriteString(`</a>`)
		}
		b.WriteString(`</nav><nav class="languages">`)
		for _, option := range LanguageOptions(page) {
			class := "lang-link"
			if option.Active {
				class += " active"
			}
			b.WriteString(`<a class="`)
			b.WriteString(templ.EscapeString(class))
			b.WriteString(`" href="`)
			b.WriteString(templ.EscapeString(LanguageURL(page, option.Tag)))
			b.WriteString(`">`)
			b.WriteString(templ.EscapeString(option.Label))
			b.WriteString(`</a>`)
		}
		b.WriteString(`</nav></header>`)

		b.WriteString(`<main class="admin-main">`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</main><script src="/assets/rowactions.js" defer></script></body></html>`)
		return err
	})
}
