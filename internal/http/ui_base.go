package httpx

import (
	"context"
	"html"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/http/ui/viewmodel"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

const errMsgFeedUnavailable = "The activity feed could not be loaded. Please try again."

// ActivityFeedService is a minimal interface for the activity feed UI.
type ActivityFeedService interface {
	Fetch(ctx context.Context, projectID string, q model.FeedQuery) (*model.EventPage, model.FeedQuery, error)
	SearchPage(events []model.Event, term string) []model.Event
	TypesOnPage(events []model.Event) []string
}

// NotesService is a minimal interface for the research note log UI.
type NotesService interface {
	List(ctx context.Context, projectID string) ([]model.Event, error)
	Add(ctx context.Context, projectID, text string) error
}

// CollaboratorsService is a minimal interface for the collaborator picker UI.
type CollaboratorsService interface {
	SearchPeople(ctx context.Context, query string) ([]model.Person, error)
	Add(ctx context.Context, projectID, personID, notes string) error
}

// ProjectsService is a minimal interface for the overview and timeline UI.
type ProjectsService interface {
	Get(ctx context.Context, projectID string) (*model.Project, error)
	Overview(ctx context.Context, projectID string) (*service.Overview, error)
}

// Compile-time interface assertions to ensure concrete services satisfy their UI interfaces.
var (
	_ ActivityFeedService  = (*service.ActivityFeedService)(nil)
	_ NotesService         = (*service.NoteService)(nil)
	_ CollaboratorsService = (*service.CollaboratorService)(nil)
	_ ProjectsService      = (*service.ProjectService)(nil)
)

// UIHandlers serves browser-facing routes.
type UIHandlers struct {
	T             *TemplateRenderer
	Feed          ActivityFeedService
	Notes         NotesService
	Collaborators CollaboratorsService
	Projects      ProjectsService
	IsDev         bool // Development mode flag for enhanced error reporting
	Logger        *slog.Logger
}

// logger returns the configured logger or falls back to slog.Default().
func (h *UIHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// getPageParams parses pagination params from URL query with sane defaults.
func getPageParams(q url.Values) (int, int) {
	page := 1
	pageSize := 20
	if p := q.Get("page"); p != "" {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			page = n
		}
	}
	if s := q.Get("page_size"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 100 {
			pageSize = n
		}
	}
	return page, pageSize
}

// pageOpts represents pagination options for list views.
type pageOpts struct {
	Page     int
	PageSize int
}

// triggerToast sends a standardized HX-Trigger payload for toast notifications.
func triggerToast(w http.ResponseWriter, message, toastType string) {
	if w == nil || strings.TrimSpace(message) == "" {
		return
	}
	HTMX(w).Trigger("showToast", map[string]any{
		"message": message,
		"type":    strings.TrimSpace(toastType),
	})
}

// buildPageURL returns a URL with page and page_size set, preserving other
// query params (sort, dir, type). Whitespace-only values are dropped.
func buildPageURL(basePath string, q url.Values, p pageOpts) string {
	qq := make(url.Values, len(q))
	for k, v := range q {
		// drop transient/htmx params and empty keys
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") {
			continue
		}
		if len(v) == 0 {
			continue
		}
		tmp := make([]string, 0, len(v))
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				tmp = append(tmp, s)
			}
		}
		if len(tmp) > 0 {
			qq[k] = tmp
		}
	}
	qq.Set("page", strconv.Itoa(p.Page))
	qq.Set("page_size", strconv.Itoa(p.PageSize))
	if enc := qq.Encode(); enc != "" {
		return basePath + "?" + enc
	}
	return basePath
}

// buildControlURL returns a first-page URL with one control param replaced.
// Sort and filter changes always restart at page 1 so the reachable window
// stays anchored to the new ordering.
func buildControlURL(basePath string, q url.Values, params map[string]string) string {
	qq := url.Values{}
	for k, v := range q {
		if strings.HasPrefix(k, "hx-") || strings.HasPrefix(k, "hx_") || k == "page" {
			continue
		}
		if _, overridden := params[k]; overridden {
			continue
		}
		for _, s := range v {
			if strings.TrimSpace(s) != "" {
				qq.Add(k, s)
			}
		}
	}
	for k, v := range params {
		if v == "" {
			continue
		}
		qq.Set(k, v)
	}
	qq.Set("page", "1")
	return basePath + "?" + qq.Encode()
}

// PageMeta contains metadata for page rendering.
type PageMeta struct {
	Title       string
	PageTitle   string
	CurrentPage string
}

// buildLayout constructs shared layout metadata from the request/session context.
func buildLayout(r *http.Request, meta PageMeta) viewmodel.Layout {
	layout := viewmodel.Layout{
		Title:       meta.Title,
		PageTitle:   meta.PageTitle,
		CurrentPage: meta.CurrentPage,
	}

	if csrfToken := GetCSRFToken(r); csrfToken != "" {
		layout.CSRFToken = csrfToken
	}

	if session := GetSessionFromContext(r.Context()); session != nil {
		layout.User = &viewmodel.User{
			Name:   session.DisplayName(),
			Email:  session.Email,
			Access: string(session.Access),
		}
		layout.IsAuthenticated = true
		layout.CanEdit = session.CanEdit()
	}

	return layout
}

// basePageData constructs the common page data map with user context.
func basePageData(r *http.Request, meta PageMeta) map[string]any {
	layout := buildLayout(r, meta)
	data := map[string]any{
		"Title":           layout.Title,
		"PageTitle":       layout.PageTitle,
		"CurrentPage":     layout.CurrentPage,
		"IsAuthenticated": layout.IsAuthenticated,
		"CanEdit":         layout.CanEdit,
	}

	if layout.CSRFToken != "" {
		data["CSRFToken"] = layout.CSRFToken
	}
	if layout.User != nil {
		data["User"] = layout.User
	}

	return data
}

// renderDashboardPage renders a page with proper HTMX partial support.
func (h *UIHandlers) renderDashboardPage(w http.ResponseWriter, r *http.Request, data map[string]any) {
	// Handle full page requests first (early return) to reduce nesting
	if !WantsPartial(r) {
		if err := h.T.RenderFull(w, r, data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "full page render")
		}
		return
	}

	// For HTMX requests, render the content plus out-of-band header updates
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	// Hint client JS to update nav active state based on current path
	SetHXTrigger(w, "nav:activate", map[string]string{"path": r.URL.Path})

	layout := extractLayoutInfo(data)

	// Include a <title> element so htmx updates document.title on partial swaps
	safeDocTitle := html.EscapeString(layout.Title)
	if _, err := w.Write([]byte(`<title>` + safeDocTitle + `</title>`)); err != nil {
		h.logger().Error("failed to write partial document title", "error", err)
		return
	}

	// Out-of-band update for the header title
	safeTitle := html.EscapeString(layout.PageTitle)
	if _, err := w.Write([]byte(`<h1 id="header-title" class="header-title" hx-swap-oob="outerHTML">` + safeTitle + `</h1>`)); err != nil {
		h.logger().Error("failed to write partial header title", "error", err)
		return
	}

	if err := h.T.t.ExecuteTemplate(w, ContentTemplateFor(layout.CurrentPage), data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "partial content render")
		return
	}
}

// writeProjectReadOnly rejects a write against a completed project. The
// entry forms are hidden on completed projects; this guards submissions
// that bypass them.
func writeProjectReadOnly(w http.ResponseWriter) {
	http.Error(w, "Access Denied: this project is completed and read only", http.StatusForbidden)
}

func markPageError(data map[string]any, msg string) {
	data["Error"] = true
	if _, ok := data["ErrorMessage"]; ok {
		return
	}
	if msg == "" {
		msg = "An unexpected error occurred. Please try again."
	}
	data["ErrorMessage"] = msg
}

func extractLayoutInfo(data map[string]any) viewmodel.Layout {
	layout := viewmodel.Layout{}
	if v, ok := data["Title"].(string); ok {
		layout.Title = v
	}
	if v, ok := data["PageTitle"].(string); ok {
		layout.PageTitle = v
	}
	if v, ok := data["CurrentPage"].(string); ok {
		layout.CurrentPage = v
	}
	return layout
}

// logAndRenderTemplateError logs template errors and renders them in dev mode.
func (h *UIHandlers) logAndRenderTemplateError(w http.ResponseWriter, r *http.Request, err error, context string) {
	h.logger().Error("template rendering failed",
		"error", err,
		"context", context,
		"path", r.URL.Path,
		"method", r.Method,
	)

	// In dev mode, show detailed error in the response
	if h.IsDev {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		errHTML := html.EscapeString(err.Error())
		pathHTML := html.EscapeString(r.URL.Path)
		contextHTML := html.EscapeString(context)
		if _, writeErr := w.Write([]byte(`
			<div class="template-error">
				<h2>Template Rendering Error</h2>
				<p><strong>Context:</strong> ` + contextHTML + `</p>
				<p><strong>Path:</strong> ` + pathHTML + `</p>
				<pre>` + errHTML + `</pre>
			</div>
		`)); writeErr != nil {
			h.logger().Error("failed to write template error response", "error", writeErr)
		}
		return
	}

	// In production, show generic error
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
