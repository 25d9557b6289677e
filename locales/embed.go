package locales

import "embed"

// FS holds the UI string bundles, one <lang>.json per locale.
//
//go:embed *.json
var FS embed.FS
