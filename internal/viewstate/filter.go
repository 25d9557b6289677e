package viewstate

import "github.com/mokfembam/portfolio/internal/catalog"

// Filter is the project category selection. The zero value selects All.
type Filter struct {
	selected catalog.Category
}

// NewFilter returns a filter selecting All.
func NewFilter() Filter { return Filter{selected: All} }

// Select replaces the selection. Labels outside the enumeration are a caller
// bug and panic.
func (f *Filter) Select(c catalog.Category) {
	if c != All && !c.Known() {
		panic(ErrUnknownCategory.Error() + ": " + string(c))
	}
	f.selected = c
}

// Selected returns the current selection.
func (f Filter) Selected() catalog.Category {
	if f.selected == "" {
		return All
	}
	return f.selected
}

// Visible returns the projects matching the selection in their original order.
// The result is never nil.
func (f Filter) Visible(projects []catalog.Project) []catalog.Project {
	sel := f.Selected()
	out := make([]catalog.Project, 0, len(projects))
	for _, p := range projects {
		if sel == All || p.Category == sel {
			out = append(out, p)
		}
	}
	return out
}
