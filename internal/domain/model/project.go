package model

import "time"

// Project statuses assigned by the backend.
const (
	ProjectStatusActive    = "active"
	ProjectStatusOnHold    = "on_hold"
	ProjectStatusCompleted = "completed"
)

// TimelineEntry is one precomputed chronological entry on a project's
// timeline. EventType is a snake/kebab-case tag humanized at render time.
type TimelineEntry struct {
	EventType   string    `json:"eventType"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

// Project is the backend's project record: descriptive fields plus the
// precomputed timeline. The UI never mutates it.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Surnames    []string        `json:"surnames,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Timeline    []TimelineEntry `json:"timeline,omitempty"`
}

// IsCompleted reports whether the project has been marked completed.
// Completed projects are read-only regardless of the viewer's access level.
func (p Project) IsCompleted() bool {
	return p.Status == ProjectStatusCompleted
}
