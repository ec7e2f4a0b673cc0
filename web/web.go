package web

import "embed"

//go:embed templates static
var Static embed.FS
