package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinship-labs/kinship-ui/internal/apiclient"
	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

func sampleProject() *model.Project {
	return &model.Project{
		ID:          "p1",
		Name:        "Walsh Family of County Mayo",
		Description: "Tracing the Walsh line back from the 1901 census.",
		Surnames:    []string{"Walsh", "Byrne"},
		Status:      model.ProjectStatusActive,
		CreatedAt:   time.Now().Add(-30 * 24 * time.Hour),
		UpdatedAt:   time.Now().Add(-time.Hour),
		Timeline: []model.TimelineEntry{
			{EventType: "project_created", Description: "Project created", Date: time.Now().Add(-30 * 24 * time.Hour)},
			{EventType: "source_attached", Description: "1901 census added", Date: time.Now().Add(-2 * 24 * time.Hour)},
		},
	}
}

func notFoundErr() error {
	return &apiclient.APIError{StatusCode: http.StatusNotFound, Message: "project not found"}
}

func TestOverview_RendersProjectAndSummary(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return &service.Overview{
			Project: sampleProject(),
			Recent:  feedEvents(),
		}, nil
	}

	r := withSession(newUIRequest("GET", "/projects/p1", "p1"), editorSession())
	w := httptest.NewRecorder()
	h.Overview(w, r)

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Walsh Family of County Mayo")
	assert.Contains(t, body, "badge-surname")
	assert.Contains(t, body, "Found the 1891 census entry", "summary widget renders recent events")
	assert.Contains(t, body, "Add collaborator", "editors see the picker button")
}

func TestOverview_ReadOnlyViewerHasNoAddButton(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return &service.Overview{Project: sampleProject(), Recent: []model.Event{}}, nil
	}

	r := withSession(newUIRequest("GET", "/projects/p1", "p1"), readOnlySession())
	w := httptest.NewRecorder()
	h.Overview(w, r)

	require.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "Add collaborator")
}

func TestOverview_CompletedProjectHasNoAddButton(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		p := sampleProject()
		p.Status = model.ProjectStatusCompleted
		return &service.Overview{Project: p, Recent: []model.Event{}}, nil
	}

	r := withSession(newUIRequest("GET", "/projects/p1", "p1"), editorSession())
	w := httptest.NewRecorder()
	h.Overview(w, r)

	require.Equal(t, 200, w.Code)
	assert.NotContains(t, w.Body.String(), "Add collaborator")
}

func TestOverview_FeedUnavailableDegrades(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return &service.Overview{Project: sampleProject(), FeedUnavailable: true}, nil
	}

	w := httptest.NewRecorder()
	h.Overview(w, newUIRequest("GET", "/projects/p1", "p1"))

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Walsh Family of County Mayo", "project fields still render")
	assert.Contains(t, body, "Recent activity is temporarily unavailable.")
}

func TestOverview_MissingProjectIs404(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return nil, notFoundErr()
	}

	r := newUIRequest("GET", "/projects/nope", "nope")
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.Overview(w, r)

	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "404")
}

func TestOverview_BackendErrorRendersMessage(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return nil, errors.New("backend down")
	}

	w := httptest.NewRecorder()
	h.Overview(w, newUIRequest("GET", "/projects/p1", "p1"))

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "alert-error")
}

func TestRecentActivityFragment(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return &service.Overview{Project: sampleProject(), Recent: feedEvents()}, nil
	}

	w := httptest.NewRecorder()
	h.RecentActivityFragment(w, newUIRequest("GET", "/projects/p1/summary", "p1"))

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Found the 1891 census entry")
	assert.NotContains(t, body, "<html", "fragment only, no layout")
}

func TestRecentActivityFragment_ErrorShowsWidgetError(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.OverviewFunc = func(context.Context, string) (*service.Overview, error) {
		return nil, errors.New("backend down")
	}

	w := httptest.NewRecorder()
	h.RecentActivityFragment(w, newUIRequest("GET", "/projects/p1/summary", "p1"))

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Recent activity is temporarily unavailable.")
}

func TestTimeline_RendersEntriesInOrder(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.GetFunc = func(context.Context, string) (*model.Project, error) {
		return sampleProject(), nil
	}

	w := httptest.NewRecorder()
	h.Timeline(w, newUIRequest("GET", "/projects/p1/timeline", "p1"))

	require.Equal(t, 200, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Project created")
	assert.Contains(t, body, "1901 census added")
	assert.Contains(t, body, "Source Attached", "timeline tags are humanized")
	assert.Less(t, // chronology preserved as delivered by the backend
		strings.Index(body, "Project created"), strings.Index(body, "1901 census added"))
}

func TestTimeline_EmptyTimeline(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.GetFunc = func(_ context.Context, projectID string) (*model.Project, error) {
		return &model.Project{ID: projectID, Name: "Fresh", Status: model.ProjectStatusActive}, nil
	}

	w := httptest.NewRecorder()
	h.Timeline(w, newUIRequest("GET", "/projects/p1/timeline", "p1"))

	require.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "This project has no timeline entries yet.")
}

func TestTimeline_MissingProjectIs404(t *testing.T) {
	h, stubs := newUIHandlers(t)
	stubs.Projects.GetFunc = func(context.Context, string) (*model.Project, error) {
		return nil, notFoundErr()
	}

	r := newUIRequest("GET", "/projects/nope/timeline", "nope")
	r.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.Timeline(w, r)

	assert.Equal(t, 404, w.Code)
}
