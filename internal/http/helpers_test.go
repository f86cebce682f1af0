package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domainauth "github.com/kinship-labs/kinship-ui/internal/domain/auth"
	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRenderer(t *testing.T) *TemplateRenderer {
	t.Helper()
	renderer, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: os.DirFS(TemplatePathFromTest),
		Logger:     testLogger(),
	})
	require.NoError(t, err)
	return renderer
}

// Stub services with overridable funcs, so each test sets only what it needs.

type stubFeed struct {
	FetchFunc func(ctx context.Context, projectID string, q model.FeedQuery) (*model.EventPage, model.FeedQuery, error)
}

func (s *stubFeed) Fetch(ctx context.Context, projectID string, q model.FeedQuery) (*model.EventPage, model.FeedQuery, error) {
	if s.FetchFunc != nil {
		return s.FetchFunc(ctx, projectID, q)
	}
	return &model.EventPage{Events: []model.Event{}}, q.Normalize(100), nil
}

func (s *stubFeed) SearchPage(events []model.Event, term string) []model.Event {
	return service.NewActivityFeedService(service.ActivityFeedOptions{Logger: testLogger()}).SearchPage(events, term)
}

func (s *stubFeed) TypesOnPage(events []model.Event) []string {
	return service.NewActivityFeedService(service.ActivityFeedOptions{Logger: testLogger()}).TypesOnPage(events)
}

type stubNotes struct {
	ListFunc func(ctx context.Context, projectID string) ([]model.Event, error)
	AddFunc  func(ctx context.Context, projectID, text string) error
}

func (s *stubNotes) List(ctx context.Context, projectID string) ([]model.Event, error) {
	if s.ListFunc != nil {
		return s.ListFunc(ctx, projectID)
	}
	return []model.Event{}, nil
}

func (s *stubNotes) Add(ctx context.Context, projectID, text string) error {
	if s.AddFunc != nil {
		return s.AddFunc(ctx, projectID, text)
	}
	return nil
}

type stubCollaborators struct {
	SearchFunc func(ctx context.Context, query string) ([]model.Person, error)
	AddFunc    func(ctx context.Context, projectID, personID, notes string) error
}

func (s *stubCollaborators) SearchPeople(ctx context.Context, query string) ([]model.Person, error) {
	if s.SearchFunc != nil {
		return s.SearchFunc(ctx, query)
	}
	return []model.Person{}, nil
}

func (s *stubCollaborators) Add(ctx context.Context, projectID, personID, notes string) error {
	if s.AddFunc != nil {
		return s.AddFunc(ctx, projectID, personID, notes)
	}
	return nil
}

type stubProjects struct {
	GetFunc      func(ctx context.Context, projectID string) (*model.Project, error)
	OverviewFunc func(ctx context.Context, projectID string) (*service.Overview, error)
}

func (s *stubProjects) Get(ctx context.Context, projectID string) (*model.Project, error) {
	if s.GetFunc != nil {
		return s.GetFunc(ctx, projectID)
	}
	return &model.Project{ID: projectID, Name: "Test Project", Status: model.ProjectStatusActive}, nil
}

func (s *stubProjects) Overview(ctx context.Context, projectID string) (*service.Overview, error) {
	if s.OverviewFunc != nil {
		return s.OverviewFunc(ctx, projectID)
	}
	return &service.Overview{
		Project: &model.Project{ID: projectID, Name: "Test Project", Status: model.ProjectStatusActive},
		Recent:  []model.Event{},
	}, nil
}

type uiHandlerStubs struct {
	Feed          *stubFeed
	Notes         *stubNotes
	Collaborators *stubCollaborators
	Projects      *stubProjects
}

func newUIHandlers(t *testing.T) (*UIHandlers, *uiHandlerStubs) {
	t.Helper()
	stubs := &uiHandlerStubs{
		Feed:          &stubFeed{},
		Notes:         &stubNotes{},
		Collaborators: &stubCollaborators{},
		Projects:      &stubProjects{},
	}
	h := &UIHandlers{
		T:             newTestRenderer(t),
		Feed:          stubs.Feed,
		Notes:         stubs.Notes,
		Collaborators: stubs.Collaborators,
		Projects:      stubs.Projects,
		Logger:        testLogger(),
	}
	return h, stubs
}

func editorSession() *domainauth.Session {
	return &domainauth.Session{
		ID:        "sess-1",
		UserID:    "user-1",
		FirstName: "Mary",
		LastName:  "Walsh",
		Email:     "mary.walsh@example.com",
		Access:    domainauth.AccessEditor,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func readOnlySession() *domainauth.Session {
	s := editorSession()
	s.Access = domainauth.AccessReadOnly
	return s
}

// newUIRequest builds a GET request with the project id path value set, the
// way the mux would before dispatch.
func newUIRequest(method, target, projectID string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	if projectID != "" {
		r.SetPathValue("id", projectID)
	}
	return r
}

func withSession(r *http.Request, s *domainauth.Session) *http.Request {
	return r.WithContext(SetSessionInContext(r.Context(), s))
}
