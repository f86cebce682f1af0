package service

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/ports"
)

// ProjectServiceOptions groups dependencies for ProjectService.
type ProjectServiceOptions struct {
	Backend ports.Backend
	Feed    *ActivityFeedService
	Logger  *slog.Logger
}

// ProjectService reads project records and assembles the overview panel
// data (static fields plus the embedded recent-activity summary).
type ProjectService struct {
	backend ports.Backend
	feed    *ActivityFeedService
	logger  *slog.Logger
}

// NewProjectService constructs a ProjectService.
func NewProjectService(opts ProjectServiceOptions) *ProjectService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectService{
		backend: opts.Backend,
		feed:    opts.Feed,
		logger:  logger,
	}
}

// Get fetches a single project record including its timeline.
func (s *ProjectService) Get(ctx context.Context, projectID string) (*model.Project, error) {
	project, err := s.backend.GetProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return project, nil
}

// Overview holds everything the overview panel renders.
type Overview struct {
	Project *model.Project
	// Recent is the embedded most-recent-events summary.
	Recent []model.Event
	// FeedUnavailable is set when the summary fetch failed; the project
	// fields still render and the widget shows its own error state.
	FeedUnavailable bool
}

// Overview fetches the project record and its activity summary concurrently.
// A missing project is fatal; a failed summary degrades to an inline error
// on the widget only.
func (s *ProjectService) Overview(ctx context.Context, projectID string) (*Overview, error) {
	var (
		project *model.Project
		recent  []model.Event
		feedErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.backend.GetProject(gctx, projectID)
		if err != nil {
			return fmt.Errorf("get project: %w", err)
		}
		project = p
		return nil
	})
	g.Go(func() error {
		events, err := s.feed.Summary(gctx, projectID)
		if err != nil {
			// Degrade instead of failing the whole overview.
			feedErr = err
			return nil
		}
		recent = events
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if feedErr != nil {
		s.logger.WarnContext(ctx, "overview summary unavailable", "project_id", projectID, "error", feedErr)
	}

	return &Overview{
		Project:         project,
		Recent:          recent,
		FeedUnavailable: feedErr != nil,
	}, nil
}
