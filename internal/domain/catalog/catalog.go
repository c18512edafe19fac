// Package catalog filters the event listing.
package catalog

import (
	"time"

	"github.com/okian/spithack/internal/domain/model"
	"github.com/okian/spithack/internal/domain/textmatch"
)

// DateLayout is the wire format of the date query parameter.
const DateLayout = "2006-01-02"

// displayLayout matches how event dates are written, e.g. "November 25, 2023".
const displayLayout = "January 2, 2006"

// FilterState is the visitor's current selection on the events page.
type FilterState struct {
	Search   string
	Category model.Category
	Date     time.Time
}

// HasDate reports whether a date was selected.
func (s FilterState) HasDate() bool {
	return !s.Date.IsZero()
}

// Active reports whether any filter narrows the list.
func (s FilterState) Active() bool {
	return s.Search != "" || !allCategories(s.Category) || s.HasDate()
}

// Filter returns the events matching every predicate in s, in their original
// order. The result is never nil.
func Filter(events []model.Event, s FilterState) []model.Event {
	out := make([]model.Event, 0, len(events))
	var day string
	if s.HasDate() {
		day = FormatDate(s.Date)
	}
	for _, e := range events {
		if !textmatch.ContainsAny(s.Search, e.Title, e.Description) {
			continue
		}
		if !allCategories(s.Category) && e.Category != s.Category {
			continue
		}
		// Substring test against free text: "December 15-17, 2023" does not
		// contain "December 16, 2023".
		if day != "" && !textmatch.Contains(e.Date, day) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Categories returns the category options in display order, sentinel first.
func Categories() []model.Category {
	return []model.Category{
		model.CategoryAll,
		model.CategoryFlagship,
		model.CategoryWeb,
		model.CategoryAIML,
		model.CategorySecurity,
		model.CategoryMobile,
		model.CategoryBlockchain,
	}
}

// ParseCategory maps a query value onto a known category. Unknown values
// yield ErrUnknownCategory.
func ParseCategory(v string) (model.Category, error) {
	if v == "" {
		return model.CategoryAll, nil
	}
	for _, c := range Categories() {
		if string(c) == v {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// FormatDate renders d the way event dates are written.
func FormatDate(d time.Time) string {
	return d.Format(displayLayout)
}

// ParseDate parses a YYYY-MM-DD value. Empty input yields the zero time.
func ParseDate(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

func allCategories(c model.Category) bool {
	return c == "" || c == model.CategoryAll
}
