package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for embedding in a <script type="application/ld+json"> tag.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Person describes the site owner.
type Person struct {
	Name     string
	JobTitle string
	Email    string
	URL      string
	Location string
	SameAs   []string
}

// PersonSchema returns a schema.org Person payload.
func PersonSchema(p Person) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
	}
	if p.JobTitle != "" {
		m["jobTitle"] = p.JobTitle
	}
	if p.Email != "" {
		m["email"] = "mailto:" + p.Email
	}
	if p.URL != "" {
		m["url"] = p.URL
	}
	if p.Location != "" {
		m["address"] = map[string]any{"@type": "PostalAddress", "addressLocality": p.Location}
	}
	if len(p.SameAs) > 0 {
		m["sameAs"] = p.SameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, inLanguage string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if inLanguage != "" {
		m["inLanguage"] = inLanguage
	}
	return m
}

// CreativeWork describes a portfolio project.
func CreativeWork(name, description, url string, keywords []string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "CreativeWork",
		"name":        name,
		"description": description,
	}
	if url != "" {
		m["url"] = url
	}
	if len(keywords) > 0 {
		m["keywords"] = keywords
	}
	return m
}
