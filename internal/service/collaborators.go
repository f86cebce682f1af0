package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/ports"
)

// ErrNoPersonSelected is returned when a collaborator submission carries no
// person identifier. The rejection happens before any backend call.
var ErrNoPersonSelected = errors.New("a person must be selected")

const defaultDirectorySearchLimit = 10

// CollaboratorServiceOptions groups dependencies for CollaboratorService.
type CollaboratorServiceOptions struct {
	Backend ports.Backend
	// Feed is notified after successful writes so cached summaries refresh.
	// Optional.
	Feed        *ActivityFeedService
	Logger      *slog.Logger
	SearchLimit int
}

// CollaboratorService runs the select-then-submit flow for associating a
// person from the directory with a project.
type CollaboratorService struct {
	backend     ports.Backend
	feed        *ActivityFeedService
	logger      *slog.Logger
	searchLimit int
}

// NewCollaboratorService constructs a CollaboratorService.
func NewCollaboratorService(opts CollaboratorServiceOptions) *CollaboratorService {
	limit := opts.SearchLimit
	if limit < 1 {
		limit = defaultDirectorySearchLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &CollaboratorService{
		backend:     opts.Backend,
		feed:        opts.Feed,
		logger:      logger,
		searchLimit: limit,
	}
}

// SearchPeople queries the person directory. A blank query returns no
// candidates without touching the backend.
func (s *CollaboratorService) SearchPeople(ctx context.Context, query string) ([]model.Person, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []model.Person{}, nil
	}

	people, err := s.backend.SearchPeople(ctx, query, s.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("search people: %w", err)
	}
	return people, nil
}

// Add associates the selected person with the project, passing the free-text
// notes through untouched. A missing person id fails with
// ErrNoPersonSelected before any backend call.
func (s *CollaboratorService) Add(ctx context.Context, projectID, personID, notes string) error {
	if strings.TrimSpace(personID) == "" {
		return ErrNoPersonSelected
	}

	if err := s.backend.AddCollaborator(ctx, projectID, personID, notes); err != nil {
		return fmt.Errorf("add collaborator: %w", err)
	}

	if s.feed != nil {
		s.feed.InvalidateSummary(ctx, projectID)
	}
	return nil
}
