package nav

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Anchor identifies an in-page section.
type Anchor string

const (
	Home     Anchor = "home"
	About    Anchor = "about"
	Skills   Anchor = "skills"
	Projects Anchor = "projects"
	Services Anchor = "services"
	Contact  Anchor = "contact"
)

// Item represents a navigation entry.
type Item struct {
	Anchor   Anchor
	LabelKey string // i18n key, e.g. "nav.about"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Anchor   Anchor
	LabelKey string
	Active   bool
}

// Main is the page navigation in document order.
var Main = []Item{
	{Anchor: Home, LabelKey: "nav.home"},
	{Anchor: About, LabelKey: "nav.about"},
	{Anchor: Skills, LabelKey: "nav.skills"},
	{Anchor: Projects, LabelKey: "nav.projects"},
	{Anchor: Services, LabelKey: "nav.services"},
	{Anchor: Contact, LabelKey: "nav.contact"},
}

// Anchors lists every section identifier in document order.
func Anchors() []Anchor {
	out := make([]Anchor, 0, len(Main))
	for _, it := range Main {
		out = append(out, it.Anchor)
	}
	return out
}

// Href returns the fragment link for the anchor.
func (a Anchor) Href() string { return "#" + string(a) }

// Build renders navigation items, marking current as active.
func Build(current Anchor) []RenderedItem {
	if current == "" {
		current = Home
	}
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     it.Anchor.Href(),
			Anchor:   it.Anchor,
			LabelKey: it.LabelKey,
			Active:   it.Anchor == current,
		})
	}
	return items
}

// QuickLinks returns the footer links. None is marked active.
func QuickLinks() []RenderedItem {
	items := Build(Home)
	for i := range items {
		items[i].Active = false
	}
	return items
}

// Target is a resolved scroll destination.
type Target struct {
	Anchor Anchor `json:"target"`
	Href   string `json:"href"`
}

// ScrollTo resolves a section id. Unknown ids are not an error: ok is false and
// the caller does nothing.
func ScrollTo(id string) (Target, bool) {
	id = strings.TrimPrefix(strings.TrimSpace(id), "#")
	for _, it := range Main {
		if string(it.Anchor) == id {
			return Target{Anchor: it.Anchor, Href: it.Anchor.Href()}, true
		}
	}
	return Target{}, false
}

// VerifyAnchors parses an HTML document and checks that every section anchor
// is carried by exactly one element.
func VerifyAnchors(r io.Reader) error {
	doc, err := html.Parse(r)
	if err != nil {
		return fmt.Errorf("nav: parse document: %w", err)
	}
	counts := map[string]int{}
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" {
					counts[a.Val]++
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	var problems []string
	for _, a := range Anchors() {
		switch n := counts[string(a)]; {
		case n == 0:
			problems = append(problems, fmt.Sprintf("%s missing", a))
		case n > 1:
			problems = append(problems, fmt.Sprintf("%s appears %d times", a, n))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("nav: anchors invalid: %s", strings.Join(problems, ", "))
	}
	return nil
}
