package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mokfembam/portfolio/internal/handlers"
	mw "github.com/mokfembam/portfolio/internal/middleware"
	"github.com/mokfembam/portfolio/internal/nav"
	"github.com/mokfembam/portfolio/internal/observability"
	"github.com/mokfembam/portfolio/internal/viewstate"
)

const scrollEvent = "portfolio:scroll"

func (s *server) options(lang string) handlers.Options {
	return handlers.Options{
		Lang:      lang,
		Languages: s.bundle.Supported(),
		BaseURL:   s.cfg.Site.BaseURL,
		Analytics: handlers.AnalyticsFromConfig(s.cfg.Analytics),
	}
}

// decodePage reads the view state from the query. It writes a 400 and returns
// false for unknown category labels.
func (s *server) decodePage(w http.ResponseWriter, r *http.Request) (viewstate.Page, bool) {
	page, err := viewstate.FromQuery(r.URL.Query(), s.catalog)
	if err != nil {
		if errors.Is(err, viewstate.ErrUnknownCategory) {
			observability.FromContext(r.Context()).Debug("rejecting view state", zap.Error(err))
			mw.WriteError(w, r, http.StatusBadRequest, err.Error())
			return viewstate.Page{}, false
		}
		mw.WriteError(w, r, http.StatusInternalServerError, "invalid state")
		return viewstate.Page{}, false
	}
	return page, true
}

// shownPage is the state of the page the browser displays. Fragment swaps
// leave links in other sections untouched, so their queries go stale; htmx
// reports the live URL in HX-Current-URL. Without it, or when it does not
// decode, requested is used as is.
func (s *server) shownPage(r *http.Request, requested viewstate.Page) viewstate.Page {
	u, ok := mw.CurrentURL(r)
	if !ok || (u.Path != "" && u.Path != handlers.PathHome) {
		return requested
	}
	shown, err := viewstate.FromQuery(u.Query(), s.catalog)
	if err != nil {
		observability.FromContext(r.Context()).Debug("ignoring current url", zap.String("url", u.String()), zap.Error(err))
		return requested
	}
	return shown
}

// transition decodes the request, then applies one state change to the page
// the browser shows.
func (s *server) transition(w http.ResponseWriter, r *http.Request, apply func(shown, requested viewstate.Page) viewstate.Page) (viewstate.Page, bool) {
	requested, ok := s.decodePage(w, r)
	if !ok {
		return viewstate.Page{}, false
	}
	return apply(s.shownPage(r, requested), requested), true
}

func (s *server) renderHome(w http.ResponseWriter, r *http.Request, page viewstate.Page) {
	data := handlers.BuildHomeData(s.catalog, page, s.options(mw.Lang(r)))
	s.renderer.render(w, r, "base", data)
}

// respond renders a fragment for htmx callers and pushes the canonical URL of
// page. Plain navigations get the full page in the same state.
func (s *server) respond(w http.ResponseWriter, r *http.Request, page viewstate.Page, name string, data any) {
	if !mw.IsHTMX(r.Context()) {
		s.renderHome(w, r, page)
		return
	}
	mw.PushURL(w, page.URL(handlers.PathHome))
	s.renderer.render(w, r, name, data)
}

// home renders the full page for the state in the query.
func (s *server) home(w http.ResponseWriter, r *http.Request) {
	page, ok := s.decodePage(w, r)
	if !ok {
		return
	}
	s.renderHome(w, r, page)
}

// projects renders the filter bar and grid for the selected category.
func (s *server) projects(w http.ResponseWriter, r *http.Request) {
	page, ok := s.transition(w, r, func(shown, requested viewstate.Page) viewstate.Page {
		return shown.WithCategory(requested.Filter.Selected())
	})
	if !ok {
		return
	}
	s.respond(w, r, page, "frag_projects", handlers.BuildProjects(s.catalog, page, mw.Lang(r)))
}

// projectDetail opens the overlay for the project in the path.
func (s *server) projectDetail(w http.ResponseWriter, r *http.Request) {
	p, found := s.catalog.Project(chi.URLParam(r, "id"))
	if !found {
		mw.WriteError(w, r, http.StatusNotFound, "project not found")
		return
	}
	page, ok := s.transition(w, r, func(shown, _ viewstate.Page) viewstate.Page {
		return shown.WithDetail(p)
	})
	if !ok {
		return
	}
	s.respond(w, r, page, "frag_project_modal", handlers.BuildModal(page, mw.Lang(r)))
}

// projectClose closes the overlay.
func (s *server) projectClose(w http.ResponseWriter, r *http.Request) {
	page, ok := s.transition(w, r, func(shown, _ viewstate.Page) viewstate.Page {
		return shown.WithoutDetail()
	})
	if !ok {
		return
	}
	s.respond(w, r, page, "frag_project_modal", handlers.BuildModal(page, mw.Lang(r)))
}

// cvNotice shows the CV notice. No download is ever served from here.
func (s *server) cvNotice(w http.ResponseWriter, r *http.Request) {
	page, ok := s.transition(w, r, func(shown, _ viewstate.Page) viewstate.Page {
		return shown.WithNotice(true)
	})
	if !ok {
		return
	}
	s.respond(w, r, page, "frag_cv_notice", handlers.BuildNotice(s.catalog.Profile(), page, mw.Lang(r)))
}

// cvDismiss hides the CV notice.
func (s *server) cvDismiss(w http.ResponseWriter, r *http.Request) {
	page, ok := s.transition(w, r, func(shown, _ viewstate.Page) viewstate.Page {
		return shown.WithNotice(false)
	})
	if !ok {
		return
	}
	s.respond(w, r, page, "frag_cv_notice", handlers.BuildNotice(s.catalog.Profile(), page, mw.Lang(r)))
}

// scroll resolves a section id into a client-side scroll event. Unknown ids
// answer 204 without a trigger.
func (s *server) scroll(w http.ResponseWriter, r *http.Request) {
	target, ok := nav.ScrollTo(chi.URLParam(r, "section"))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, handlers.PathHome+target.Href, http.StatusSeeOther)
		return
	}
	if err := mw.Trigger(w, scrollEvent, target); err != nil {
		mw.WriteError(w, r, http.StatusInternalServerError, "trigger encode failed")
		return
	}
	w.WriteHeader(http.StatusOK)
}
