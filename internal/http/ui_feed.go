package httpx

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/http/ui/viewmodel"
)

// sortableFields lists the feed columns offered as sort controls, in the
// order they appear in the toolbar.
//
//nolint:gochecknoglobals // static read-only lookup
var sortableFields = []model.SortField{
	model.SortByCreatedAt,
	model.SortByEventType,
	model.SortByActor,
}

// feedQueryFromRequest assembles a backend feed query from the request's
// query parameters. The free-text search term stays out of the query on
// purpose: it narrows the already-fetched page locally and never reaches the
// backend.
func feedQueryFromRequest(r *http.Request) model.FeedQuery {
	params := r.URL.Query()
	page, pageSize := getPageParams(params)

	q := model.DefaultFeedQuery(pageSize)
	q.Page = page

	if field, dir := ParseSortParam(params, "sort", "dir"); field != "" {
		if sortBy, ok := model.ParseSortField(field); ok {
			q.SortBy = sortBy
			if dir != "" {
				q.SortDir = model.SortDir(dir)
			}
		}
	}

	q.EventType = strings.TrimSpace(params.Get("type"))
	return q
}

// Activity renders the project activity feed tab.
// GET /projects/{id}/activity.
func (h *UIHandlers) Activity(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}

	meta := PageMeta{
		Title:       "Activity - Kinship",
		PageTitle:   "Activity Feed",
		CurrentPage: PageActivity,
	}
	basePath := "/projects/" + projectID + "/activity"

	q := feedQueryFromRequest(r)
	page, q, err := h.Feed.Fetch(r.Context(), projectID, q)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "activity feed fetch failed",
			"project_id", projectID, "error", err)
		// Fetch failures render a generic message; the extracted API
		// detail stays in the log.
		data := NewTemplateData(r, meta).
			With("ProjectID", projectID).
			WithError(errMsgFeedUnavailable).
			Build()
		h.renderDashboardPage(w, r, data)
		return
	}

	term := strings.TrimSpace(r.URL.Query().Get("q"))
	visible := h.Feed.SearchPage(page.Events, term)

	data := NewTemplateData(r, meta).
		With("ProjectID", projectID).
		With("Events", viewmodel.EventRows(visible)).
		With("Search", term).
		With("Filtered", term != "" && len(visible) < len(page.Events)).
		With("SortBy", string(q.SortBy)).
		With("SortDir", string(q.SortDir)).
		With("EventType", q.EventType).
		With("SortOptions", h.sortControlOptions(basePath, r.URL.Query(), q)).
		With("TypeOptions", h.typeFilterOptions(basePath, r, page.Events, q.EventType)).
		WithPagination(PaginationData{
			Page:       q.Page,
			PageSize:   q.PageSize,
			TotalPages: page.Metadata.TotalPages,
			HasPrev:    page.Metadata.HasPrev(),
			HasNext:    page.Metadata.HasNext(),
			TotalCount: page.Metadata.Total,
			BasePath:   basePath,
		}).
		Build()

	h.renderDashboardPage(w, r, data)
}

// sortControlOptions builds one toolbar control per sortable column, in
// toolbar order. Clicking the active column flips the direction; every sort
// link restarts at page 1.
func (h *UIHandlers) sortControlOptions(
	basePath string,
	params url.Values,
	q model.FeedQuery,
) []viewmodel.SortOption {
	options := make([]viewmodel.SortOption, 0, len(sortableFields))
	for _, field := range sortableFields {
		dir := model.SortDesc
		if q.SortBy == field && q.SortDir == model.SortDesc {
			dir = model.SortAsc
		}
		options = append(options, viewmodel.SortOption{
			Field:  string(field),
			Label:  model.EventTypeLabel(string(field)),
			Active: q.SortBy == field,
			Dir:    string(q.SortDir),
			URL: buildControlURL(basePath, params, map[string]string{
				"sort": string(field),
				"dir":  string(dir),
			}),
		})
	}
	return options
}

// typeFilterOptions derives the type dropdown from the current page's events.
// The option list reflects only what is visible on this page, so it narrows
// as filters are applied; "All types" clears the filter.
func (h *UIHandlers) typeFilterOptions(
	basePath string,
	r *http.Request,
	events []model.Event,
	selected string,
) []viewmodel.TypeOption {
	types := h.Feed.TypesOnPage(events)
	options := make([]viewmodel.TypeOption, 0, len(types)+1)

	options = append(options, viewmodel.TypeOption{
		Value:    "",
		Label:    "All types",
		Selected: selected == "",
		URL:      buildControlURL(basePath, r.URL.Query(), map[string]string{"type": ""}),
	})
	for _, t := range types {
		options = append(options, viewmodel.TypeOption{
			Value:    t,
			Label:    model.EventTypeLabel(t),
			Selected: t == selected,
			URL:      buildControlURL(basePath, r.URL.Query(), map[string]string{"type": t}),
		})
	}
	return options
}
