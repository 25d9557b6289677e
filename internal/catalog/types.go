package catalog

import "html/template"

// Category classifies a project. The set is closed.
type Category string

const (
	CategoryFrontend  Category = "Frontend"
	CategoryFullStack Category = "Full-Stack"
	CategoryMobile    Category = "Mobile"
)

// Categories lists the project categories in display order.
func Categories() []Category {
	return []Category{CategoryFrontend, CategoryFullStack, CategoryMobile}
}

// Known reports whether c is one of the project categories.
func (c Category) Known() bool {
	for _, k := range Categories() {
		if c == k {
			return true
		}
	}
	return false
}

// Profile describes the portfolio owner.
type Profile struct {
	FirstName string   `yaml:"first_name"`
	LastName  string   `yaml:"last_name"`
	Initials  string   `yaml:"initials"`
	Role      string   `yaml:"role"`
	Tagline   string   `yaml:"tagline"`
	Summary   string   `yaml:"summary"`
	Email     string   `yaml:"email"`
	Location  string   `yaml:"location"`
	CVURL     string   `yaml:"cv_url"`
	SinceYear int      `yaml:"since_year"`
	Story     []string `yaml:"story"`

	// StoryHTML holds the rendered story paragraphs.
	StoryHTML []template.HTML `yaml:"-"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// CVAvailable reports whether a CV download is published.
func (p Profile) CVAvailable() bool { return p.CVURL != "" }

// Stat is a headline number shown in the hero.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Passion is an about-section highlight card.
type Passion struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Skill is a proficiency bar entry.
type Skill struct {
	Name       string `yaml:"name"`
	Percentage int    `yaml:"percentage"`
	Icon       string `yaml:"icon"`
	Color      string `yaml:"color"`
}

// SkillGroup groups skill names under a discipline.
type SkillGroup struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Skills      []string `yaml:"skills"`
}

// Service is an offered service with its feature checklist.
type Service struct {
	Icon        string   `yaml:"icon"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Color       string   `yaml:"color"`
}

// ProcessStep is one stage of the delivery process.
type ProcessStep struct {
	Step        string `yaml:"step"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
}

// SocialLink is an outbound profile link.
type SocialLink struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

// Project is a portfolio entry.
type Project struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description"`
	Image           string   `yaml:"image"`
	Technologies    []string `yaml:"technologies"`
	Category        Category `yaml:"category"`
	LiveURL         string   `yaml:"live_url,omitempty"`
	GitHubURL       string   `yaml:"github_url,omitempty"`
	Features        []string `yaml:"features"`
	Challenges      []string `yaml:"challenges"`
	Solutions       []string `yaml:"solutions"`

	LongDescriptionHTML template.HTML `yaml:"-"`
}

// HasLinks reports whether the project carries any outbound link.
func (p Project) HasLinks() bool { return p.LiveURL != "" || p.GitHubURL != "" }

func (p Project) clone() Project {
	cp := p
	cp.Technologies = cloneStrings(p.Technologies)
	cp.Features = cloneStrings(p.Features)
	cp.Challenges = cloneStrings(p.Challenges)
	cp.Solutions = cloneStrings(p.Solutions)
	return cp
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
