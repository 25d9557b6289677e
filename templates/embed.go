package templates

import "embed"

// FS holds the page layout, section and fragment templates.
//
//go:embed *.tmpl partials/*.tmpl
var FS embed.FS

// Patterns lists the globs that make up the template set.
var Patterns = []string{"*.tmpl", "partials/*.tmpl"}
