package viewstate

import "github.com/mokfembam/portfolio/internal/catalog"

// Detail tracks which project's overlay is open, if any.
type Detail struct {
	project *catalog.Project
}

// Open shows p, replacing any open project.
func (d *Detail) Open(p catalog.Project) {
	d.project = &p
}

// Close hides the overlay. Closing a closed overlay is a no-op.
func (d *Detail) Close() { d.project = nil }

// IsOpen reports whether a project overlay is shown.
func (d Detail) IsOpen() bool { return d.project != nil }

// Selected returns the open project.
func (d Detail) Selected() (catalog.Project, bool) {
	if d.project == nil {
		return catalog.Project{}, false
	}
	return *d.project, true
}
