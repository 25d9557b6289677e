package seo

import "html/template"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
}

type Twitter struct {
	Card  string
	Image string
}

// Alternate is an hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
	JSONLD      []template.JS
}

// Absolute joins base and path. An empty base leaves path relative.
func Absolute(base, path string) string {
	if base == "" {
		return path
	}
	if path == "" || path[0] != '/' {
		path = "/" + path
	}
	return base + path
}
