// Package view holds the page-level state machines: the list/selection/
// filter model and the create-edit form model. They carry no rendering and
// no networking, which is what makes them testable; the ui package wraps
// them in bubbletea models.
package view

import (
	"strings"
)

// List holds one page's full fetched collection, its free-text search
// string and at most one active (selected) record.
type List[E any] struct {
	items    []E
	search   string
	activeID string

	id           func(E) string
	searchFields func(E) []string
}

// NewList creates a list model. id extracts a record's identity,
// searchFields the fixed field subset the free-text filter matches against.
func NewList[E any](id func(E) string, searchFields func(E) []string) *List[E] {
	return &List[E]{id: id, searchFields: searchFields}
}

// SetItems replaces the collection and clears the selection. A reload
// always drops the active record, matching the page behavior.
func (l *List[E]) SetItems(items []E) {
	l.items = items
	l.activeID = ""
}

// Items returns the unfiltered collection.
func (l *List[E]) Items() []E {
	return l.items
}

// SetSearch replaces the search string.
func (l *List[E]) SetSearch(s string) {
	l.search = s
}

// Search returns the current search string.
func (l *List[E]) Search() string {
	return l.search
}

// Filtered returns the records whose searchable fields contain the search
// string, case-insensitively. Pure: the underlying collection is never
// touched, and an empty search matches everything.
func (l *List[E]) Filtered() []E {
	if l.search == "" {
		return l.items
	}
	needle := strings.ToLower(l.search)

	filtered := make([]E, 0, len(l.items))
	for _, item := range l.items {
		for _, field := range l.searchFields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// Select marks the record with the given id active. Selecting a new record
// simply replaces the previous selection.
func (l *List[E]) Select(id string) {
	l.activeID = id
}

// ClearSelection drops the active record.
func (l *List[E]) ClearSelection() {
	l.activeID = ""
}

// Active returns the selected record, if one is selected and still present
// in the collection.
func (l *List[E]) Active() (E, bool) {
	var zero E
	if l.activeID == "" {
		return zero, false
	}
	for _, item := range l.items {
		if l.id(item) == l.activeID {
			return item, true
		}
	}
	return zero, false
}

// ActiveID returns the selected record's id, or "".
func (l *List[E]) ActiveID() string {
	if _, ok := l.Active(); !ok {
		return ""
	}
	return l.activeID
}
