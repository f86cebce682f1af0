package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFeedQuery(t *testing.T) {
	q := DefaultFeedQuery(20)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, SortByCreatedAt, q.SortBy)
	assert.Equal(t, SortDesc, q.SortDir)
	assert.Empty(t, q.EventType)
	assert.Empty(t, q.Search)
}

func TestDefaultFeedQuery_InvalidPageSize(t *testing.T) {
	q := DefaultFeedQuery(0)
	assert.Equal(t, 10, q.PageSize)
}

func TestFeedQuery_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       FeedQuery
		expected FeedQuery
	}{
		{
			name: "valid query untouched",
			in: FeedQuery{
				Page: 3, PageSize: 25,
				SortBy: SortByActor, SortDir: SortAsc,
				EventType: "note", Search: "smith",
			},
			expected: FeedQuery{
				Page: 3, PageSize: 25,
				SortBy: SortByActor, SortDir: SortAsc,
				EventType: "note", Search: "smith",
			},
		},
		{
			name: "page and size clamped",
			in:   FeedQuery{Page: 0, PageSize: -5},
			expected: FeedQuery{
				Page: 1, PageSize: 10,
				SortBy: SortByCreatedAt, SortDir: SortDesc,
			},
		},
		{
			name: "oversize page size capped",
			in:   FeedQuery{Page: 1, PageSize: 500},
			expected: FeedQuery{
				Page: 1, PageSize: 100,
				SortBy: SortByCreatedAt, SortDir: SortDesc,
			},
		},
		{
			name: "unknown sort field and dir replaced",
			in:   FeedQuery{Page: 2, PageSize: 10, SortBy: "bogus", SortDir: "sideways"},
			expected: FeedQuery{
				Page: 2, PageSize: 10,
				SortBy: SortByCreatedAt, SortDir: SortDesc,
			},
		},
		{
			name: "filter and search trimmed",
			in: FeedQuery{
				Page: 1, PageSize: 10,
				SortBy: SortByCreatedAt, SortDir: SortDesc,
				EventType: "  note  ", Search: "  jones ",
			},
			expected: FeedQuery{
				Page: 1, PageSize: 10,
				SortBy: SortByCreatedAt, SortDir: SortDesc,
				EventType: "note", Search: "jones",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize(100))
		})
	}
}

func TestFeedQuery_WithSortResetsPage(t *testing.T) {
	q := FeedQuery{Page: 7, PageSize: 10, SortBy: SortByCreatedAt, SortDir: SortDesc}

	got := q.WithSort(SortByEventType, SortAsc)

	assert.Equal(t, 1, got.Page)
	assert.Equal(t, SortByEventType, got.SortBy)
	assert.Equal(t, SortAsc, got.SortDir)
}

func TestFeedQuery_WithEventTypeResetsPage(t *testing.T) {
	q := FeedQuery{Page: 4, PageSize: 10}

	got := q.WithEventType(" status_change ")
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, "status_change", got.EventType)

	// Empty means all types, still back to page 1.
	got = q.WithEventType("")
	assert.Equal(t, 1, got.Page)
	assert.Empty(t, got.EventType)
}

func TestFeedQuery_WithPage(t *testing.T) {
	q := FeedQuery{Page: 2}

	assert.Equal(t, 5, q.WithPage(5).Page)
	assert.Equal(t, 1, q.WithPage(0).Page)
	assert.Equal(t, 1, q.WithPage(-3).Page)
}

func TestParseSortField(t *testing.T) {
	tests := []struct {
		raw      string
		expected SortField
		ok       bool
	}{
		{"created_at", SortByCreatedAt, true},
		{"event_type", SortByEventType, true},
		{"actor", SortByActor, true},
		{" actor ", SortByActor, true},
		{"ACTOR", "", false},
		{"message", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		field, ok := ParseSortField(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.expected, field, "raw=%q", tt.raw)
	}
}
