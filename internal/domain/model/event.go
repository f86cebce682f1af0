//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"time"
)

// Event types recorded by the kinship backend for project activity.
const (
	EventTypeNote              = "note"
	EventTypeResearchMilestone = "research_milestone"
	EventTypeStatusChange      = "status_change"
	EventTypePersonAdded       = "person_added"
	EventTypeSourceAttached    = "source_attached"
	EventTypeProjectCreated    = "project_created"
)

// Actor identifies the person who produced an event. Names may be empty for
// system-generated events.
type Actor struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// FullName joins the actor's first and last name, trimming stray whitespace.
func (a Actor) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
}

// Event is a timestamped record of project activity. Events are owned by the
// backend and immutable once fetched; the UI holds read-only copies.
type Event struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	EventType string    `json:"eventType"`
	CreatedAt time.Time `json:"createdAt"`
	Actor     *Actor    `json:"actor,omitempty"`
}

// ActorName returns the actor's full name, or empty when the event has none.
func (e Event) ActorName() string {
	if e.Actor == nil {
		return ""
	}
	return e.Actor.FullName()
}
