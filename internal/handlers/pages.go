package handlers

import (
	"net/url"

	"github.com/mokfembam/portfolio/internal/catalog"
	"github.com/mokfembam/portfolio/internal/format"
	"github.com/mokfembam/portfolio/internal/viewstate"
)

// Paths of the fragment endpoints.
const (
	PathHome         = "/"
	PathProjects     = "/projects"
	PathProjectClose = "/projects/close"
	PathCV           = "/cv"
	PathCVDismiss    = "/cv/dismiss"
	PathScroll       = "/scroll/"
)

// cardTechLimit is how many technology badges a card shows before "+N more".
const cardTechLimit = 3

// Link pairs the canonical page URL of a state with the htmx endpoint that
// renders the matching fragment.
type Link struct {
	Href  string
	HXGet string
}

// FilterTab is one category button above the project grid.
type FilterTab struct {
	Category catalog.Category
	LabelKey string
	Active   bool
	Link     Link
}

// ProjectCard is the grid view of a project.
type ProjectCard struct {
	Project   catalog.Project
	Icon      viewstate.IconID
	ShownTech []string
	MoreTech  int
	Details   Link
}

// ProjectsData renders the filter bar and project grid.
type ProjectsData struct {
	Lang    string
	Filters []FilterTab
	Cards   []ProjectCard
}

// Empty reports whether the selected category has no projects.
func (d ProjectsData) Empty() bool { return len(d.Cards) == 0 }

// ModalData renders the project detail overlay. A nil *ModalData means closed.
type ModalData struct {
	Lang    string
	Project catalog.Project
	Icon    viewstate.IconID
	Close   Link
}

// NoticeData renders the CV notice dialog.
type NoticeData struct {
	Lang    string
	Visible bool
	Email   string
	Dismiss Link
}

// BuildProjects composes the filter bar and the visible cards for page.
func BuildProjects(c *catalog.Catalog, page viewstate.Page, lang string) ProjectsData {
	selected := page.Filter.Selected()
	labels := viewstate.Labels()
	filters := make([]FilterTab, 0, len(labels))
	for _, l := range labels {
		next := page.WithCategory(l).WithoutDetail()
		filters = append(filters, FilterTab{
			Category: l,
			LabelKey: "category." + string(l),
			Active:   l == selected,
			Link:     Link{Href: next.URL(PathHome) + "#projects", HXGet: next.URL(PathProjects)},
		})
	}

	visible := page.Filter.Visible(c.Projects())
	cards := make([]ProjectCard, 0, len(visible))
	for _, p := range visible {
		shown, more := format.Overflow(p.Technologies, cardTechLimit)
		opened := page.WithDetail(p)
		cards = append(cards, ProjectCard{
			Project:   p,
			Icon:      viewstate.CategoryIcon(p.Category),
			ShownTech: shown,
			MoreTech:  more,
			Details: Link{
				Href:  opened.URL(PathHome),
				HXGet: withQuery(PathProjects+"/"+url.PathEscape(p.ID), page.Query()),
			},
		})
	}
	return ProjectsData{Lang: lang, Filters: filters, Cards: cards}
}

// BuildModal returns the overlay view, or nil when the overlay is closed.
func BuildModal(page viewstate.Page, lang string) *ModalData {
	p, ok := page.Detail.Selected()
	if !ok {
		return nil
	}
	closed := page.WithoutDetail()
	return &ModalData{
		Lang:    lang,
		Project: p,
		Icon:    viewstate.CategoryIcon(p.Category),
		Close:   Link{Href: closed.URL(PathHome) + "#projects", HXGet: closed.URL(PathProjectClose)},
	}
}

// BuildNotice returns the CV notice dialog view.
func BuildNotice(profile catalog.Profile, page viewstate.Page, lang string) NoticeData {
	dismissed := page.WithNotice(false)
	return NoticeData{
		Lang:    lang,
		Visible: page.Notice.Visible(),
		Email:   profile.Email,
		Dismiss: Link{Href: dismissed.URL(PathHome), HXGet: dismissed.URL(PathCVDismiss)},
	}
}

func withQuery(path string, q url.Values) string {
	if enc := q.Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}
