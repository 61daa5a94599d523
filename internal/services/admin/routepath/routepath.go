// Package routepath centralizes admin route constants so handlers and
// templates never drift on URL shapes.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root = "/"
)

const (
	AssetsPrefix = "/assets/"
)

const (
	Items       = "/items"
	Principals  = "/principals"
	Terms       = "/terms"
	Comments    = "/comments"
	Attachments = "/attachments"
)

const (
	ActionsRunPrefix = "/actions/run/"
)

// ActionsRun returns the async dispatch path for one object kind.
func ActionsRun(kind string) string {
	return ActionsRunPrefix + escapeSegment(kind)
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
