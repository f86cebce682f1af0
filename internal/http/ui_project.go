package httpx

import (
	"net/http"

	"github.com/kinship-labs/kinship-ui/internal/apiclient"
	"github.com/kinship-labs/kinship-ui/internal/http/ui/viewmodel"
)

// Overview renders the project overview tab: descriptive fields plus the
// embedded recent-activity summary.
// GET /projects/{id}.
func (h *UIHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}

	meta := PageMeta{
		Title:       "Overview - Kinship",
		PageTitle:   "Project Overview",
		CurrentPage: PageOverview,
	}

	overview, err := h.Projects.Overview(r.Context(), projectID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.logger().ErrorContext(r.Context(), "overview load failed",
			"project_id", projectID, "error", err)
		data := NewTemplateData(r, meta).
			With("ProjectID", projectID).
			WithError(apiclient.ErrorMessage(err)).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	project := viewmodel.NewProjectSummary(*overview.Project)
	canWrite := CanEditProject(r.Context()) && !project.Completed

	data := NewTemplateData(r, PageMeta{
		Title:       project.Name + " - Kinship",
		PageTitle:   project.Name,
		CurrentPage: PageOverview,
	}).
		With("ProjectID", projectID).
		With("Project", project).
		With("Recent", viewmodel.EventRows(overview.Recent)).
		With("FeedUnavailable", overview.FeedUnavailable).
		With("CanWrite", canWrite).
		Build()

	h.renderDashboardPage(w, r, data)
}

// RecentActivityFragment re-renders just the overview's summary widget, used
// after a note or collaborator write invalidates the cached summary.
// GET /projects/{id}/summary.
func (h *UIHandlers) RecentActivityFragment(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}

	overview, err := h.Projects.Overview(r.Context(), projectID)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "summary fragment load failed",
			"project_id", projectID, "error", err)
		renderErr := h.T.RenderNamed(w, "recent-activity", map[string]any{
			"ProjectID":       projectID,
			"FeedUnavailable": true,
		})
		if renderErr != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if err := h.T.RenderNamed(w, "recent-activity", map[string]any{
		"ProjectID":       projectID,
		"Recent":          viewmodel.EventRows(overview.Recent),
		"FeedUnavailable": overview.FeedUnavailable,
	}); err != nil {
		h.logAndRenderTemplateError(w, r, err, "summary fragment render")
	}
}

// Timeline renders the project's precomputed chronology.
// GET /projects/{id}/timeline.
func (h *UIHandlers) Timeline(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}

	meta := PageMeta{
		Title:       "Timeline - Kinship",
		PageTitle:   "Timeline",
		CurrentPage: PageTimeline,
	}

	project, err := h.Projects.Get(r.Context(), projectID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			h.NotFound(w, r)
			return
		}
		h.logger().ErrorContext(r.Context(), "timeline load failed",
			"project_id", projectID, "error", err)
		data := NewTemplateData(r, meta).
			With("ProjectID", projectID).
			WithError(apiclient.ErrorMessage(err)).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	data := NewTemplateData(r, meta).
		With("ProjectID", projectID).
		With("Project", viewmodel.NewProjectSummary(*project)).
		With("Entries", viewmodel.TimelineRows(project.Timeline)).
		Build()

	h.renderDashboardPage(w, r, data)
}
