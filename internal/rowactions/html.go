package rowactions

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

const (
	// TriggerClass marks anchors the client script intercepts for async
	// dispatch.
	TriggerClass = "rowactions-trigger"
	// iconClassPrefix namespaces glyph classes rendered before labels.
	iconClassPrefix = "rowactions-icon"
	// objectIDParam is the query parameter appended to static action URLs.
	objectIDParam = "object_id"
)

// asyncAnchor renders the trigger anchor for an asynchronous action. The data
// attributes carry everything the client posts back to the async endpoint.
func asyncAnchor(def Definition, kind Kind, subkind string, objectID int64, token, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes := TriggerClass
		if def.CSSClass != "" {
			classes += " " + def.CSSClass
		}
		attrs := []attribute{
			{name: "href", value: "#"},
			{name: "class", value: classes},
			{name: "data-object-type", value: string(kind)},
			{name: "data-object-subtype", value: subkind},
			{name: "data-action-key", value: def.Key},
			{name: "data-object-id", value: strconv.FormatInt(objectID, 10)},
			{name: "data-nonce", value: token},
			{name: "data-confirm", value: def.Confirm},
		}
		return writeAnchor(w, attrs, def.Icon, label)
	})
}

// urlAnchor renders a navigation anchor for a static or resolver-backed URL.
// An action without a target renders an inert "#" link.
func urlAnchor(def Definition, objectID int64, label string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		href := "#"
		switch target := def.Target.(type) {
		case StaticURL:
			href = appendQueryParam(string(target), objectIDParam, strconv.FormatInt(objectID, 10))
		case URLResolver:
			if target != nil {
				href = target(objectID)
			}
		}
		if href != "#" {
			href = string(templ.URL(href))
		}

		attrs := []attribute{{name: "href", value: href}}
		if def.CSSClass != "" {
			attrs = append(attrs, attribute{name: "class", value: def.CSSClass})
		}
		if def.LinkTarget != "" {
			attrs = append(attrs, attribute{name: "target", value: def.LinkTarget})
		}
		return writeAnchor(w, attrs, def.Icon, label)
	})
}

type attribute struct {
	name  string
	value string
}

func writeAnchor(w io.Writer, attrs []attribute, icon, label string) error {
	var b strings.Builder
	b.WriteString("<a")
	for _, attr := range attrs {
		b.WriteString(" ")
		b.WriteString(attr.name)
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	if icon != "" {
		b.WriteString(`<span class="`)
		b.WriteString(templ.EscapeString(iconClassPrefix + " " + iconClassPrefix + "-" + icon))
		b.WriteString(`" aria-hidden="true"></span>`)
	}
	b.WriteString(templ.EscapeString(label))
	b.WriteString("</a>")
	_, err := io.WriteString(w, b.String())
	return err
}

// appendQueryParam appends a single query parameter to a URL.
func appendQueryParam(baseURL, key, value string) string {
	separator := "?"
	if strings.Contains(baseURL, "?") {
		separator = "&"
	}
	return baseURL + separator + url.QueryEscape(key) + "=" + url.QueryEscape(value)
}

func renderFragment(ctx context.Context, component templ.Component) (string, error) {
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
