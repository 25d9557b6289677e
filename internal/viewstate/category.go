// Package viewstate holds the transient UI state of the portfolio page: the
// project filter, the project detail overlay and the CV notice dialog. Each
// holder is a small value type with total transition methods so the logic can
// be tested without rendering anything.
package viewstate

import (
	"errors"
	"fmt"

	"github.com/mokfembam/portfolio/internal/catalog"
)

// All is the sentinel filter label that disables filtering.
const All catalog.Category = "All"

// ErrUnknownCategory is returned for labels outside the filter enumeration.
var ErrUnknownCategory = errors.New("viewstate: unknown category")

// Labels returns the filter labels in display order, starting with All.
func Labels() []catalog.Category {
	return append([]catalog.Category{All}, catalog.Categories()...)
}

// ParseCategory maps a label to a filter category. The empty label means All.
func ParseCategory(label string) (catalog.Category, error) {
	if label == "" {
		return All, nil
	}
	for _, c := range Labels() {
		if string(c) == label {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, label)
}

// MustCategory is ParseCategory for labels known at compile time.
func MustCategory(label string) catalog.Category {
	c, err := ParseCategory(label)
	if err != nil {
		panic(err)
	}
	return c
}

// IconID names a presentational icon.
type IconID string

const (
	IconGlobe      IconID = "globe"
	IconCode       IconID = "code"
	IconSmartphone IconID = "smartphone"
	IconDatabase   IconID = "database"
)

// CategoryIcon maps a project category to its badge icon.
func CategoryIcon(c catalog.Category) IconID {
	switch c {
	case catalog.CategoryFrontend:
		return IconGlobe
	case catalog.CategoryFullStack:
		return IconCode
	case catalog.CategoryMobile:
		return IconSmartphone
	default:
		return IconDatabase
	}
}
