package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// document mirrors the YAML layout of a catalog file.
type document struct {
	Profile     Profile       `yaml:"profile"`
	Stats       []Stat        `yaml:"stats"`
	Passions    []Passion     `yaml:"passions"`
	Skills      []Skill       `yaml:"skills"`
	SkillGroups []SkillGroup  `yaml:"skill_groups"`
	Tools       []string      `yaml:"tools"`
	SoftSkills  []string      `yaml:"soft_skills"`
	Services    []Service     `yaml:"services"`
	Process     []ProcessStep `yaml:"process"`
	Projects    []Project     `yaml:"projects"`
	Social      []SocialLink  `yaml:"social"`
}

// Catalog is the read-only content set rendered by the page. It is safe for
// concurrent use.
type Catalog struct {
	doc   document
	index map[string]int
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog compiled into the binary. A malformed embedded
// catalog is a build defect, so Default panics instead of returning an error.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(embeddedCatalog)
		if err != nil {
			panic(fmt.Sprintf("catalog: embedded data invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// LoadFile reads and validates a catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse decodes, validates and renders a catalog document.
func Parse(raw []byte) (*Catalog, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	c := &Catalog{doc: doc, index: make(map[string]int, len(doc.Projects))}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	for i := range c.doc.Projects {
		c.index[c.doc.Projects[i].ID] = i
		c.doc.Projects[i].LongDescriptionHTML = RenderMarkdown(c.doc.Projects[i].LongDescription)
	}
	c.doc.Profile.StoryHTML = RenderMarkdownParagraphs(c.doc.Profile.Story)
	return c, nil
}

// reservedIDs collide with fixed routes under /projects/.
var reservedIDs = map[string]bool{"close": true}

// ValidationError lists every problem found in a catalog document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("catalog validation failed: %s", strings.Join(e.Problems, "; "))
}

// Validate checks structural invariants of the catalog.
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}
	d := c.doc
	if strings.TrimSpace(d.Profile.FirstName) == "" {
		add("profile.first_name is required")
	}
	if d.Profile.Email != "" && !strings.Contains(d.Profile.Email, "@") {
		add("profile.email %q is not an address", d.Profile.Email)
	}
	if d.Profile.CVURL != "" && !validLink(d.Profile.CVURL) {
		add("profile.cv_url %q is not a valid link", d.Profile.CVURL)
	}
	seen := map[string]bool{}
	for i, p := range d.Projects {
		switch {
		case p.ID == "":
			add("projects[%d].id is required", i)
		case reservedIDs[p.ID]:
			add("projects[%d].id %q is reserved", i, p.ID)
		case seen[p.ID]:
			add("projects[%d].id %q is duplicated", i, p.ID)
		default:
			seen[p.ID] = true
		}
		if !p.Category.Known() {
			add("projects[%d].category %q is unknown", i, p.Category)
		}
		if p.LiveURL != "" && !validLink(p.LiveURL) {
			add("projects[%d].live_url %q is not a valid link", i, p.LiveURL)
		}
		if p.GitHubURL != "" && !validLink(p.GitHubURL) {
			add("projects[%d].github_url %q is not a valid link", i, p.GitHubURL)
		}
	}
	for i, s := range d.Skills {
		if s.Percentage < 0 || s.Percentage > 100 {
			add("skills[%d].percentage %d out of range", i, s.Percentage)
		}
	}
	for i, s := range d.Process {
		if s.Step == "" || s.Title == "" {
			add("process[%d] needs step and title", i)
		}
	}
	for i, l := range d.Social {
		if !validLink(l.Href) {
			add("social[%d].href %q is not a valid link", i, l.Href)
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func validLink(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https":
		return u.Host != ""
	case "mailto":
		return strings.Contains(u.Opaque, "@")
	default:
		return false
	}
}

// Profile returns the owner profile.
func (c *Catalog) Profile() Profile {
	p := c.doc.Profile
	p.Story = cloneStrings(p.Story)
	if p.StoryHTML != nil {
		p.StoryHTML = append([]template.HTML(nil), p.StoryHTML...)
	}
	return p
}

// Stats returns the hero statistics.
func (c *Catalog) Stats() []Stat { return append([]Stat(nil), c.doc.Stats...) }

// Passions returns the about-section highlights.
func (c *Catalog) Passions() []Passion { return append([]Passion(nil), c.doc.Passions...) }

// Skills returns the proficiency bars.
func (c *Catalog) Skills() []Skill { return append([]Skill(nil), c.doc.Skills...) }

// SkillGroups returns skill groups by discipline.
func (c *Catalog) SkillGroups() []SkillGroup {
	out := make([]SkillGroup, len(c.doc.SkillGroups))
	for i, g := range c.doc.SkillGroups {
		g.Skills = cloneStrings(g.Skills)
		out[i] = g
	}
	return out
}

// Tools returns the additional tooling list.
func (c *Catalog) Tools() []string { return cloneStrings(c.doc.Tools) }

// SoftSkills returns the soft-skill list.
func (c *Catalog) SoftSkills() []string { return cloneStrings(c.doc.SoftSkills) }

// Services returns the offered services.
func (c *Catalog) Services() []Service {
	out := make([]Service, len(c.doc.Services))
	for i, s := range c.doc.Services {
		s.Features = cloneStrings(s.Features)
		out[i] = s
	}
	return out
}

// Process returns the delivery process steps in order.
func (c *Catalog) Process() []ProcessStep { return append([]ProcessStep(nil), c.doc.Process...) }

// Social returns the outbound social links.
func (c *Catalog) Social() []SocialLink { return append([]SocialLink(nil), c.doc.Social...) }

// Projects returns all projects in catalog order.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.doc.Projects))
	for i, p := range c.doc.Projects {
		out[i] = p.clone()
	}
	return out
}

// Project looks up a project by id.
func (c *Catalog) Project(id string) (Project, bool) {
	i, ok := c.index[id]
	if !ok {
		return Project{}, false
	}
	return c.doc.Projects[i].clone(), true
}

// MarshalYAML encodes the catalog back to its file layout.
func (c *Catalog) MarshalYAML() (any, error) { return c.doc, nil }
