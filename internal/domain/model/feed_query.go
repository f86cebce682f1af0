package model

import "strings"

// SortField enumerates the event fields the backend can sort a feed by.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByEventType SortField = "event_type"
	SortByActor     SortField = "actor"
)

// ParseSortField validates a raw sort field string.
func ParseSortField(raw string) (SortField, bool) {
	switch SortField(strings.TrimSpace(raw)) {
	case SortByCreatedAt:
		return SortByCreatedAt, true
	case SortByEventType:
		return SortByEventType, true
	case SortByActor:
		return SortByActor, true
	default:
		return "", false
	}
}

// SortDir is the sort direction for a feed query.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// FeedQuery is the view-owned query state for the activity feed. Page,
// sorting, and the type filter are applied server-side by the backend;
// Search narrows the fetched page locally and never reaches the wire.
type FeedQuery struct {
	Page      int
	PageSize  int
	SortBy    SortField
	SortDir   SortDir
	EventType string
	Search    string
}

// DefaultFeedQuery returns the initial query state: first page, newest first.
func DefaultFeedQuery(pageSize int) FeedQuery {
	if pageSize < 1 {
		pageSize = 10
	}
	return FeedQuery{
		Page:     1,
		PageSize: pageSize,
		SortBy:   SortByCreatedAt,
		SortDir:  SortDesc,
	}
}

// Normalize clamps the query into valid bounds and substitutes defaults for
// unrecognized sort fields or directions.
func (q FeedQuery) Normalize(maxPageSize int) FeedQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	if maxPageSize > 0 && q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if _, ok := ParseSortField(string(q.SortBy)); !ok {
		q.SortBy = SortByCreatedAt
	}
	if q.SortDir != SortAsc && q.SortDir != SortDesc {
		q.SortDir = SortDesc
	}
	q.EventType = strings.TrimSpace(q.EventType)
	q.Search = strings.TrimSpace(q.Search)
	return q
}

// WithSort returns a copy sorted by the given field and direction. Changing
// the sort always moves the query back to the first page.
func (q FeedQuery) WithSort(field SortField, dir SortDir) FeedQuery {
	q.SortBy = field
	q.SortDir = dir
	q.Page = 1
	return q
}

// WithEventType returns a copy filtered to the given event type (empty means
// all types). Changing the filter always moves the query back to the first page.
func (q FeedQuery) WithEventType(eventType string) FeedQuery {
	q.EventType = strings.TrimSpace(eventType)
	q.Page = 1
	return q
}

// WithPage returns a copy targeting the given page.
func (q FeedQuery) WithPage(page int) FeedQuery {
	if page < 1 {
		page = 1
	}
	q.Page = page
	return q
}
