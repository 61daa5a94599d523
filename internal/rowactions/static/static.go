// Package static embeds the client-side assets for async row action
// triggers.
package static

import "embed"

// FS exposes row action client assets for HTTP serving.
//
//go:embed *.js *.css
var FS embed.FS
