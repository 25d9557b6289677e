package handlers

import (
	"html/template"
	"time"

	"github.com/mokfembam/portfolio/internal/catalog"
	"github.com/mokfembam/portfolio/internal/format"
	"github.com/mokfembam/portfolio/internal/nav"
	"github.com/mokfembam/portfolio/internal/seo"
	"github.com/mokfembam/portfolio/internal/viewstate"
)

// Options carries request-level inputs that are not part of the view state.
type Options struct {
	Lang      string
	Languages []string
	BaseURL   string
	Analytics Analytics
	Now       time.Time
}

// HomeData is the view model for the single portfolio page. Sections render in
// the order hero, about, skills, projects, services, footer.
type HomeData struct {
	Lang      string
	Languages []string
	SEO       seo.Meta
	Analytics Analytics

	Nav        []nav.RenderedItem
	QuickLinks []nav.RenderedItem

	Hero     HeroData
	About    AboutData
	Skills   SkillsData
	Projects ProjectsData
	Modal    *ModalData
	Services ServicesData
	Footer   FooterData
	Notice   NoticeData
}

// HeroData renders the landing banner.
type HeroData struct {
	Profile  catalog.Profile
	Initials string
	Stats    []catalog.Stat
	Social   []catalog.SocialLink
	// CV triggers the notice dialog; when a CV is published it links to it directly.
	CV          Link
	CVAvailable bool
	ProjectsRef Link
}

// AboutData renders the about section.
type AboutData struct {
	Passions []catalog.Passion
	Profile  catalog.Profile
}

// SkillsData renders the skills section.
type SkillsData struct {
	Skills     []catalog.Skill
	Groups     []catalog.SkillGroup
	Tools      []string
	SoftSkills []string
}

// ServicesData renders the services section.
type ServicesData struct {
	Services []catalog.Service
	Process  []catalog.ProcessStep
	Contact  Link
}

// FooterData renders the footer, which also carries the contact anchor.
type FooterData struct {
	Profile   catalog.Profile
	Initials  string
	Social    []catalog.SocialLink
	Copyright string
}

// BuildHomeData composes every section for page.
func BuildHomeData(c *catalog.Catalog, page viewstate.Page, opts Options) HomeData {
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}
	profile := c.Profile()
	initials := profile.Initials
	if initials == "" {
		initials = format.Initials(profile.FullName())
	}
	social := c.Social()

	cv := page.WithNotice(true)
	hero := HeroData{
		Profile:     profile,
		Initials:    initials,
		Stats:       c.Stats(),
		Social:      social,
		CVAvailable: profile.CVAvailable(),
		CV:          Link{Href: cv.URL(PathHome), HXGet: cv.URL(PathCV)},
		ProjectsRef: scrollLink(nav.Projects),
	}
	if hero.CVAvailable {
		hero.CV = Link{Href: profile.CVURL}
	}

	return HomeData{
		Lang:      opts.Lang,
		Languages: opts.Languages,
		SEO:       buildMeta(c, page, opts),
		Analytics: opts.Analytics,

		Nav:        nav.Build(nav.Home),
		QuickLinks: nav.QuickLinks(),

		Hero:  hero,
		About: AboutData{Passions: c.Passions(), Profile: profile},
		Skills: SkillsData{
			Skills:     c.Skills(),
			Groups:     c.SkillGroups(),
			Tools:      c.Tools(),
			SoftSkills: c.SoftSkills(),
		},
		Projects: BuildProjects(c, page, opts.Lang),
		Modal:    BuildModal(page, opts.Lang),
		Services: ServicesData{
			Services: c.Services(),
			Process:  c.Process(),
			Contact:  scrollLink(nav.Contact),
		},
		Footer: FooterData{
			Profile:   profile,
			Initials:  initials,
			Social:    social,
			Copyright: format.YearRange(profile.SinceYear, opts.Now),
		},
		Notice: BuildNotice(profile, page, opts.Lang),
	}
}

func scrollLink(a nav.Anchor) Link {
	return Link{Href: a.Href(), HXGet: PathScroll + string(a)}
}

func buildMeta(c *catalog.Catalog, page viewstate.Page, opts Options) seo.Meta {
	profile := c.Profile()
	canonical := seo.Absolute(opts.BaseURL, page.URL(PathHome))
	title := profile.FullName() + " | " + profile.Role
	description := profile.Summary
	if p, ok := page.Detail.Selected(); ok {
		title = p.Title + " | " + profile.FullName()
		description = p.Description
	}

	sameAs := make([]string, 0, len(c.Social()))
	for _, s := range c.Social() {
		if s.Icon != "mail" {
			sameAs = append(sameAs, s.Href)
		}
	}
	meta := seo.Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Robots:      "index,follow",
		OG: seo.OpenGraph{
			Title:       title,
			Description: description,
			Type:        "profile",
			URL:         canonical,
			SiteName:    profile.FullName(),
			Locale:      opts.Lang,
		},
		Twitter: seo.Twitter{Card: "summary"},
		JSONLD: []template.JS{
			seo.Script(seo.PersonSchema(seo.Person{
				Name:     profile.FullName(),
				JobTitle: profile.Role,
				Email:    profile.Email,
				URL:      opts.BaseURL,
				Location: profile.Location,
				SameAs:   sameAs,
			})),
			seo.Script(seo.WebSite(profile.FullName(), opts.BaseURL, opts.Lang)),
		},
	}
	if p, ok := page.Detail.Selected(); ok {
		meta.JSONLD = append(meta.JSONLD, seo.Script(seo.CreativeWork(p.Title, p.Description, p.LiveURL, p.Technologies)))
	}
	for _, l := range opts.Languages {
		meta.Alternates = append(meta.Alternates, seo.Alternate{
			Href:     seo.Absolute(opts.BaseURL, withLang(page, l)),
			Hreflang: l,
		})
	}
	return meta
}

func withLang(page viewstate.Page, lang string) string {
	q := page.Query()
	q.Set("hl", lang)
	return withQuery(PathHome, q)
}
