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

// ErrEmptyNote is returned when a submitted note contains no text after
// trimming. The rejection happens before any backend call.
var ErrEmptyNote = errors.New("note text cannot be empty")

const defaultNoteListSize = 50

// NoteServiceOptions groups dependencies for NoteService.
type NoteServiceOptions struct {
	Backend ports.Backend
	// Feed is notified after successful writes so cached summaries refresh.
	// Optional.
	Feed     *ActivityFeedService
	Logger   *slog.Logger
	ListSize int
}

// NoteService reads and appends research milestone notes. The note log is a
// fixed slice of the event feed: research_milestone events, newest first.
type NoteService struct {
	backend  ports.Backend
	feed     *ActivityFeedService
	logger   *slog.Logger
	listSize int
}

// NewNoteService constructs a NoteService.
func NewNoteService(opts NoteServiceOptions) *NoteService {
	listSize := opts.ListSize
	if listSize < 1 {
		listSize = defaultNoteListSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteService{
		backend:  opts.Backend,
		feed:     opts.Feed,
		logger:   logger,
		listSize: listSize,
	}
}

// List fetches the project's research milestone events, newest first.
func (s *NoteService) List(ctx context.Context, projectID string) ([]model.Event, error) {
	q := model.DefaultFeedQuery(s.listSize).WithEventType(model.EventTypeResearchMilestone)
	page, err := s.backend.ListProjectEvents(ctx, projectID, q)
	if err != nil {
		return nil, fmt.Errorf("list research notes: %w", err)
	}
	return page.Events, nil
}

// Add appends a new research note. Whitespace-only text is rejected with
// ErrEmptyNote and performs no network call. There is no optimistic insert;
// callers re-fetch the list after a successful write.
func (s *NoteService) Add(ctx context.Context, projectID, text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ErrEmptyNote
	}

	if err := s.backend.AddResearchNote(ctx, projectID, trimmed); err != nil {
		return fmt.Errorf("add research note: %w", err)
	}

	if s.feed != nil {
		s.feed.InvalidateSummary(ctx, projectID)
	}
	return nil
}
