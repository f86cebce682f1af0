package viewmodel

import (
	"time"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/http/uiutil"
)

// EventRow is one rendered activity feed entry.
type EventRow struct {
	ID          string
	Message     string
	TypeTag     string
	TypeLabel   string
	ActorName   string
	CreatedAt   time.Time
	RelativeAge string
}

// NewEventRow maps a domain event onto its display row.
func NewEventRow(ev model.Event) EventRow {
	return EventRow{
		ID:          ev.ID,
		Message:     ev.Message,
		TypeTag:     ev.EventType,
		TypeLabel:   model.EventTypeLabel(ev.EventType),
		ActorName:   ev.ActorName(),
		CreatedAt:   ev.CreatedAt,
		RelativeAge: uiutil.FriendlyRelativeTime(ev.CreatedAt),
	}
}

// EventRows maps a slice of events, preserving order.
func EventRows(events []model.Event) []EventRow {
	rows := make([]EventRow, 0, len(events))
	for _, ev := range events {
		rows = append(rows, NewEventRow(ev))
	}
	return rows
}

// SortOption is one column control in the feed's sort toolbar.
type SortOption struct {
	Field  string
	Label  string
	Active bool
	Dir    string
	URL    string
}

// TypeOption is one entry in the event type filter dropdown.
type TypeOption struct {
	Value    string
	Label    string
	Selected bool
	URL      string
}

// PersonRow renders one people directory search result.
type PersonRow struct {
	ID       string
	FullName string
	Lifespan string
}

// NewPersonRow maps a directory person onto its display row.
func NewPersonRow(p model.Person) PersonRow {
	return PersonRow{
		ID:       p.ID,
		FullName: p.FullName(),
		Lifespan: p.Lifespan(),
	}
}

// PersonRows maps a slice of people, preserving directory order.
func PersonRows(people []model.Person) []PersonRow {
	rows := make([]PersonRow, 0, len(people))
	for _, p := range people {
		rows = append(rows, NewPersonRow(p))
	}
	return rows
}

// TimelineRow renders one chronology entry.
type TimelineRow struct {
	TypeTag     string
	TypeLabel   string
	Description string
	Date        string
}

// TimelineRows maps project timeline entries, preserving order.
func TimelineRows(entries []model.TimelineEntry) []TimelineRow {
	rows := make([]TimelineRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, TimelineRow{
			TypeTag:     e.EventType,
			TypeLabel:   model.EventTypeLabel(e.EventType),
			Description: e.Description,
			Date:        uiutil.FormatFriendlyDate(e.Date),
		})
	}
	return rows
}
