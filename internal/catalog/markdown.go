package catalog

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	// catalog text is trusted, but links inside it still must not carry scripts
	sanitizer = func() *bluemonday.Policy {
		p := bluemonday.UGCPolicy()
		p.RequireNoFollowOnLinks(false)
		p.AddTargetBlankToFullyQualifiedLinks(true)
		return p
	}()
)

// RenderMarkdown converts markdown to sanitized HTML. Empty input yields "".
func RenderMarkdown(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// RenderMarkdownParagraphs renders each entry independently.
func RenderMarkdownParagraphs(src []string) []template.HTML {
	if len(src) == 0 {
		return nil
	}
	out := make([]template.HTML, 0, len(src))
	for _, s := range src {
		if h := RenderMarkdown(s); h != "" {
			out = append(out, h)
		}
	}
	return out
}
