package model

// PageMetadata is the pagination descriptor the backend returns alongside
// every list query. It is recomputed server-side on each fetch; the UI keeps
// only the latest value.
type PageMetadata struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// LastPage returns the highest valid page number, never below 1.
func (m PageMetadata) LastPage() int {
	if m.TotalPages < 1 {
		return 1
	}
	return m.TotalPages
}

// HasNext reports whether a page after the current one exists.
func (m PageMetadata) HasNext() bool {
	return m.Page < m.TotalPages
}

// HasPrev reports whether a page before the current one exists.
func (m PageMetadata) HasPrev() bool {
	return m.Page > 1
}

// EventPage is one fetched page of project events with its metadata.
type EventPage struct {
	Events   []Event      `json:"events"`
	Metadata PageMetadata `json:"metadata"`
}
