package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/ports"
)

const (
	defaultMaxPageSize = 100
	defaultSummarySize = 5
)

// ActivityFeedOptions groups dependencies for ActivityFeedService.
type ActivityFeedOptions struct {
	Backend ports.Backend
	// Summary is the snapshot cache for overview pages. Optional; when nil
	// every summary render fetches from the backend.
	Summary     ports.SummaryStore
	Logger      *slog.Logger
	MaxPageSize int
	SummarySize int
}

// ActivityFeedService owns the activity feed's query handling: normalizing
// and clamping queries against backend page metadata, narrowing a fetched
// page with the local search term, and maintaining the cached
// most-recent-events summary used by project overviews.
type ActivityFeedService struct {
	backend     ports.Backend
	summary     ports.SummaryStore
	logger      *slog.Logger
	maxPageSize int
	summarySize int

	// Summary refreshes are deduplicated per project; the sequence token
	// ensures a slow, stale response never overwrites a newer snapshot.
	refreshGroup singleflight.Group
	seqMu        sync.Mutex
	seq          map[string]uint64
}

// NewActivityFeedService constructs the feed service with sane defaults.
func NewActivityFeedService(opts ActivityFeedOptions) *ActivityFeedService {
	maxPageSize := opts.MaxPageSize
	if maxPageSize < 1 {
		maxPageSize = defaultMaxPageSize
	}
	summarySize := opts.SummarySize
	if summarySize < 1 {
		summarySize = defaultSummarySize
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityFeedService{
		backend:     opts.Backend,
		summary:     opts.Summary,
		logger:      logger,
		maxPageSize: maxPageSize,
		summarySize: summarySize,
		seq:         make(map[string]uint64),
	}
}

// Fetch loads one page of events per the query. When the requested page lies
// beyond the backend's last page (events were deleted, or a stale link), the
// fetch is re-issued once at the last valid page. The returned query reflects
// any clamping so pagination URLs stay consistent with what was rendered.
func (s *ActivityFeedService) Fetch(
	ctx context.Context,
	projectID string,
	q model.FeedQuery,
) (*model.EventPage, model.FeedQuery, error) {
	q = q.Normalize(s.maxPageSize)

	page, err := s.backend.ListProjectEvents(ctx, projectID, q)
	if err != nil {
		return nil, q, fmt.Errorf("list project events: %w", err)
	}

	if last := page.Metadata.LastPage(); page.Metadata.TotalPages > 0 && q.Page > last {
		q = q.WithPage(last)
		page, err = s.backend.ListProjectEvents(ctx, projectID, q)
		if err != nil {
			return nil, q, fmt.Errorf("list project events (clamped to page %d): %w", last, err)
		}
	}

	return page, q, nil
}

// SearchPage narrows the fetched page by a case-insensitive substring match
// against the message, the humanized event-type label, and the actor's full
// name. It never triggers a fetch and never touches page metadata; it only
// reduces what is rendered.
func (s *ActivityFeedService) SearchPage(events []model.Event, term string) []model.Event {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return events
	}

	matched := make([]model.Event, 0, len(events))
	for _, ev := range events {
		if eventMatches(ev, term) {
			matched = append(matched, ev)
		}
	}
	return matched
}

func eventMatches(ev model.Event, term string) bool {
	if strings.Contains(strings.ToLower(ev.Message), term) {
		return true
	}
	if strings.Contains(strings.ToLower(model.EventTypeLabel(ev.EventType)), term) {
		return true
	}
	return strings.Contains(strings.ToLower(ev.ActorName()), term)
}

// TypesOnPage returns the distinct event types present on the loaded page,
// sorted for stable dropdown rendering. The filter choices are deliberately
// page-scoped, so they can change between pages.
func (s *ActivityFeedService) TypesOnPage(events []model.Event) []string {
	seen := make(map[string]struct{}, len(events))
	var types []string
	for _, ev := range events {
		t := strings.TrimSpace(ev.EventType)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Summary returns the most recent events for a project's overview panel,
// serving from the snapshot cache when possible. Concurrent cache misses for
// the same project share a single backend fetch.
func (s *ActivityFeedService) Summary(ctx context.Context, projectID string) ([]model.Event, error) {
	if s.summary != nil {
		events, ok, err := s.summary.Get(ctx, projectID)
		if err != nil {
			s.logger.WarnContext(ctx, "summary cache read failed", "project_id", projectID, "error", err)
		} else if ok {
			return events, nil
		}
	}

	result, err, _ := s.refreshGroup.Do(projectID, func() (any, error) {
		return s.refreshSummary(ctx, projectID)
	})
	if err != nil {
		return nil, err
	}
	events, _ := result.([]model.Event)
	return events, nil
}

// InvalidateSummary drops the cached snapshot after a write so the next
// overview render reflects the new event.
func (s *ActivityFeedService) InvalidateSummary(ctx context.Context, projectID string) {
	if s.summary == nil {
		return
	}
	if err := s.summary.Invalidate(ctx, projectID); err != nil {
		s.logger.WarnContext(ctx, "summary cache invalidate failed", "project_id", projectID, "error", err)
	}
}

// refreshSummary fetches a fresh snapshot and stores it, unless a newer
// refresh was issued while this one was in flight. Applying only the latest
// token keeps a slow stale response from overwriting fresher state.
func (s *ActivityFeedService) refreshSummary(ctx context.Context, projectID string) ([]model.Event, error) {
	token := s.issueToken(projectID)

	q := model.DefaultFeedQuery(s.summarySize)
	page, err := s.backend.ListProjectEvents(ctx, projectID, q)
	if err != nil {
		return nil, fmt.Errorf("refresh activity summary: %w", err)
	}

	if s.summary != nil && s.isLatestToken(projectID, token) {
		if storeErr := s.summary.Set(ctx, projectID, page.Events); storeErr != nil {
			s.logger.WarnContext(ctx, "summary cache write failed", "project_id", projectID, "error", storeErr)
		}
	}
	return page.Events, nil
}

func (s *ActivityFeedService) issueToken(projectID string) uint64 {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	s.seq[projectID]++
	return s.seq[projectID]
}

func (s *ActivityFeedService) isLatestToken(projectID string, token uint64) bool {
	s.seqMu.Lock()
	defer s.seqMu.Unlock()
	return s.seq[projectID] == token
}
