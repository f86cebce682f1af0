package ports

import (
	"context"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
)

// Backend is the contract this UI relies on from the remote kinship REST
// service. The backend owns all project, event, and person data; this port
// only shapes queries and consumes JSON-shaped responses.
type Backend interface {
	// GetProject fetches a single project record including its timeline.
	GetProject(ctx context.Context, projectID string) (*model.Project, error)

	// ListProjectEvents fetches one page of project events filtered, sorted,
	// and paged per the query. The Search term is local-only and must not
	// influence the request.
	ListProjectEvents(ctx context.Context, projectID string, q model.FeedQuery) (*model.EventPage, error)

	// AddResearchNote appends a research milestone note to the project feed.
	AddResearchNote(ctx context.Context, projectID, text string) error

	// AddCollaborator associates a person from the directory with a project.
	AddCollaborator(ctx context.Context, projectID, personID, notes string) error

	// SearchPeople queries the person directory for picker candidates.
	SearchPeople(ctx context.Context, query string, limit int) ([]model.Person, error)
}

// SummaryStore caches the most-recent-events snapshot rendered on project
// overview pages.
type SummaryStore interface {
	Get(ctx context.Context, projectID string) ([]model.Event, bool, error)
	Set(ctx context.Context, projectID string, events []model.Event) error
	Invalidate(ctx context.Context, projectID string) error
}
