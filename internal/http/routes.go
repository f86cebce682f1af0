package httpx

import (
	"bytes"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/httprate"

	kinshipui "github.com/kinship-labs/kinship-ui"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Feed          *service.ActivityFeedService
	Notes         *service.NoteService
	Collaborators *service.CollaboratorService
	Projects      *service.ProjectService
	Auth          *service.AuthService
	CookieDomain  string
	IsDev         bool         // Development mode flag for hot reloading, etc.
	Logger        *slog.Logger // Logger for template and HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router with browser middleware.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	if services.Auth != nil {
		authHandlers := &AuthHandlers{
			Svc:          services.Auth,
			CookieDomain: services.CookieDomain,
			Logger:       services.Logger,
		}
		registerAuthRoutes(mux, authHandlers)
	}

	mux.Handle("GET /static/", staticHandler(services.IsDev))

	uiHandlers := setupUIHandlers(services)
	if uiHandlers != nil {
		cfg := uiRouteConfig{Auth: services.Auth, CookieDomain: services.CookieDomain}
		registerUIRoutes(mux, uiHandlers, cfg)
	}

	// Wrap with NotFound handler and browser detection middleware
	var handler http.Handler = &notFoundHandler{
		mux:        mux,
		uiHandlers: uiHandlers,
	}

	// Attach the session when present so unauthenticated surfaces (the
	// signed-out page, the 404 page) can render viewer-aware chrome.
	if services.Auth != nil {
		handler = OptionalAuth(services.Auth)(handler)
	}

	return BrowserDetection()(handler)
}

// setupUIHandlers creates UI handlers with a template renderer.
// In dev mode templates are loaded from disk for hot reloading; in
// production they come from the embedded FS.
func setupUIHandlers(services RouterServices) *UIHandlers {
	var templateFS fs.FS
	if services.IsDev {
		templateFS = os.DirFS(TemplatePathFromRoot)
	} else {
		sub, err := fs.Sub(kinshipui.TemplateFS, "frontend/templates")
		if err != nil {
			log.Printf("failed to create sub-filesystem for templates: %v; falling back to disk", err)
			sub = os.DirFS(TemplatePathFromRoot)
		}
		templateFS = sub
	}

	tr, err := NewTemplateRenderer(TemplateRendererConfig{
		TemplateFS: templateFS,
		Logger:     services.Logger,
	})
	if err != nil {
		if services.Logger != nil {
			services.Logger.Error("failed to create template renderer", slog.Any("error", err))
		} else {
			log.Printf("ERROR: failed to create template renderer: %v", err)
		}
		return nil
	}

	return &UIHandlers{
		T:             tr,
		Feed:          services.Feed,
		Notes:         services.Notes,
		Collaborators: services.Collaborators,
		Projects:      services.Projects,
		IsDev:         services.IsDev,
		Logger:        services.Logger,
	}
}

// staticHandler serves /static/* assets: from disk in dev mode, from the
// embedded FS in production.
func staticHandler(isDev bool) http.Handler {
	if isDev {
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}

	staticSub, err := fs.Sub(kinshipui.StaticFS, "frontend/static")
	if err != nil {
		log.Printf("failed to create sub-filesystem for static assets: %v", err)
		return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.Dir("frontend/static"))))
	}
	return staticWithCacheHeaders(http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))
}

// staticWithCacheHeaders wraps a static file handler to add cache headers.
func staticWithCacheHeaders(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		handler.ServeHTTP(w, r)
	})
}

// notFoundHandler wraps a ServeMux and provides custom 404 handling.
type notFoundHandler struct {
	mux        *http.ServeMux
	uiHandlers *UIHandlers
}

// ServeHTTP implements http.Handler and provides custom 404 handling.
func (h *notFoundHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	cw := newCaptureWriter(w)
	h.mux.ServeHTTP(cw, r)

	// If the mux didn't handle the request (404), use our custom handler
	if cw.status == http.StatusNotFound {
		// For missing static assets, preserve the default file server response
		if strings.HasPrefix(r.URL.Path, "/static/") {
			cw.flushTo(w)
			return
		}
		if h.uiHandlers != nil {
			h.uiHandlers.NotFound(w, r)
			return
		}
		http.NotFound(w, r)
		return
	}

	cw.flushTo(w)
}

// captureWriter buffers headers, status and body so we can decide post-dispatch.
type captureWriter struct {
	rw     http.ResponseWriter
	header http.Header
	status int
	buf    bytes.Buffer
}

func newCaptureWriter(w http.ResponseWriter) *captureWriter {
	return &captureWriter{rw: w, header: make(http.Header), status: http.StatusOK}
}

func (c *captureWriter) Header() http.Header         { return c.header }
func (c *captureWriter) WriteHeader(code int)        { c.status = code }
func (c *captureWriter) Write(b []byte) (int, error) { return c.buf.Write(b) }

func (c *captureWriter) flushTo(w http.ResponseWriter) {
	for k, vs := range c.header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(c.status)
	if _, err := w.Write(c.buf.Bytes()); err != nil {
		log.Printf("failed to write captured response: %v", err)
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// uiRouteConfig holds configuration for UI route registration.
type uiRouteConfig struct {
	Auth         *service.AuthService
	CookieDomain string
}

// authWrap returns a no-op wrapper when auth is nil, otherwise it requires a
// session and hydrates the CSRF token for embedded forms.
func (cfg uiRouteConfig) authWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	auth := RequireAuthBrowser(cfg.Auth)
	return func(h http.Handler) http.Handler {
		return auth(csrf(h))
	}
}

// editorWrap additionally requires editor or owner access, plus a per-IP
// rate limit on write endpoints.
func (cfg uiRouteConfig) editorWrap() func(http.Handler) http.Handler {
	if cfg.Auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	csrf := CSRFProtection(CSRFConfig{CookieDomain: cfg.CookieDomain})
	editor := RequireEditorBrowser(cfg.Auth)
	limit := httprate.LimitByIP(30, time.Minute)
	return func(h http.Handler) http.Handler {
		return limit(editor(csrf(h)))
	}
}

// registerUIRoutes wires all browser-facing pages and fragments.
func registerUIRoutes(mux *http.ServeMux, h *UIHandlers, cfg uiRouteConfig) {
	wrap := cfg.authWrap()
	wrapEditor := cfg.editorWrap()

	mux.Handle("GET /", wrap(http.HandlerFunc(h.Index)))
	mux.Handle("GET /projects", wrap(http.HandlerFunc(h.OpenProject)))

	// Project tabs
	mux.Handle("GET /projects/{id}", wrap(http.HandlerFunc(h.Overview)))
	mux.Handle("GET /projects/{id}/activity", wrap(http.HandlerFunc(h.Activity)))
	mux.Handle("GET /projects/{id}/timeline", wrap(http.HandlerFunc(h.Timeline)))
	mux.Handle("GET /projects/{id}/summary", wrap(http.HandlerFunc(h.RecentActivityFragment)))

	// Research notes
	mux.Handle("GET /projects/{id}/notes", wrap(http.HandlerFunc(h.NotesPage)))
	mux.Handle("POST /projects/{id}/notes", wrapEditor(http.HandlerFunc(h.NoteCreate)))

	// Collaborator picker
	mux.Handle("GET /projects/{id}/collaborators/new", wrapEditor(http.HandlerFunc(h.CollaboratorNew)))
	mux.Handle("POST /projects/{id}/collaborators", wrapEditor(http.HandlerFunc(h.CollaboratorCreate)))
	mux.Handle("GET /people/search", wrap(http.HandlerFunc(h.PeopleSearch)))

	// Public auth-related UI routes (no auth wrapper)
	mux.Handle("GET /auth/signed-out", http.HandlerFunc(h.SignedOut))
}
