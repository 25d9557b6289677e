package viewstate

import (
	"net/url"
	"strings"

	"github.com/mokfembam/portfolio/internal/catalog"
)

// Query parameter names carrying page state.
const (
	QueryCategory = "category"
	QueryProject  = "project"
	QueryNotice   = "notice"

	noticeCV = "cv"
)

// ProjectLookup resolves project ids. *catalog.Catalog satisfies it.
type ProjectLookup interface {
	Project(id string) (catalog.Project, bool)
}

// Page is the complete view state of the portfolio page. Each section owns its
// own holder; nothing couples the detail overlay and the notice dialog.
type Page struct {
	Filter Filter
	Detail Detail
	Notice Notice
}

// NewPage returns the initial state: All selected, no overlay, no dialog.
func NewPage() Page {
	return Page{Filter: NewFilter()}
}

// FromQuery decodes page state from URL query values. Unknown categories are
// rejected; unknown project ids leave the overlay closed.
func FromQuery(q url.Values, projects ProjectLookup) (Page, error) {
	p := NewPage()
	c, err := ParseCategory(strings.TrimSpace(q.Get(QueryCategory)))
	if err != nil {
		return Page{}, err
	}
	p.Filter.Select(c)
	if id := strings.TrimSpace(q.Get(QueryProject)); id != "" && projects != nil {
		if proj, ok := projects.Project(id); ok {
			p.Detail.Open(proj)
		}
	}
	if q.Get(QueryNotice) == noticeCV {
		p.Notice.Trigger()
	}
	return p, nil
}

// Query encodes the state. Defaults are omitted so the initial state encodes
// to an empty query.
func (p Page) Query() url.Values {
	q := url.Values{}
	if c := p.Filter.Selected(); c != All {
		q.Set(QueryCategory, string(c))
	}
	if proj, ok := p.Detail.Selected(); ok {
		q.Set(QueryProject, proj.ID)
	}
	if p.Notice.Visible() {
		q.Set(QueryNotice, noticeCV)
	}
	return q
}

// URL returns path with the encoded state appended.
func (p Page) URL(path string) string {
	if enc := p.Query().Encode(); enc != "" {
		return path + "?" + enc
	}
	return path
}

// WithCategory returns a copy with the filter changed.
func (p Page) WithCategory(c catalog.Category) Page {
	p.Filter.Select(c)
	return p
}

// WithDetail returns a copy with proj's overlay open.
func (p Page) WithDetail(proj catalog.Project) Page {
	p.Detail.Open(proj)
	return p
}

// WithoutDetail returns a copy with the overlay closed.
func (p Page) WithoutDetail() Page {
	p.Detail.Close()
	return p
}

// WithNotice returns a copy with the dialog shown or hidden.
func (p Page) WithNotice(visible bool) Page {
	if visible {
		p.Notice.Trigger()
	} else {
		p.Notice.Dismiss()
	}
	return p
}
