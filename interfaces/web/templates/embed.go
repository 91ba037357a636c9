// Package templates embeds the static assets served by the dashboard.
package templates

import "embed"

//go:embed assets
var FS embed.FS
