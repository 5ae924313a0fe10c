package web

import (
	"embed"
)

// Embed the templates and static assets so the binary is self-contained.
//
//go:embed templates static
var Assets embed.FS
