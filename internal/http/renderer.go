package httpx

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/kinship-labs/kinship-ui/internal/domain/model"
	"github.com/kinship-labs/kinship-ui/internal/http/uiutil"
)

// TemplateRenderer renders HTML templates for UI responses.
type TemplateRenderer struct {
	t      *template.Template
	logger *slog.Logger
}

// TemplateRendererConfig holds configuration for creating a TemplateRenderer.
type TemplateRendererConfig struct {
	TemplateFS fs.FS        // Filesystem containing templates (required)
	Logger     *slog.Logger // Logger for template errors (optional)
}

// NewTemplateRenderer constructs a renderer by parsing templates from the provided config.
func NewTemplateRenderer(cfg TemplateRendererConfig) (*TemplateRenderer, error) {
	if cfg.TemplateFS == nil {
		return nil, errors.New("TemplateFS is required")
	}

	renderer := &TemplateRenderer{logger: cfg.Logger}

	var t *template.Template
	t, err := template.New("root").Funcs(templateFuncs(&t)).ParseFS(cfg.TemplateFS,
		"*.tmpl",
		"pages/*.tmpl",
		"partials/*.tmpl",
	)
	if err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Error("template parsing failed",
				slog.Any("error", err),
				slog.String("phase", "initialization"),
			)
		}
		return nil, err
	}
	renderer.t = t
	return renderer, nil
}

// RenderFull renders the full page (layout + page content).
func (r *TemplateRenderer) RenderFull(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "layout", data)
}

// RenderError renders an error page using the error template.
func (r *TemplateRenderer) RenderError(w http.ResponseWriter, _ *http.Request, data any) error {
	return r.renderTemplate(w, "error-layout", data)
}

// RenderNamed renders a specific named template, used for standalone
// fragments (search results, summary widgets) outside the page/content split.
func (r *TemplateRenderer) RenderNamed(w http.ResponseWriter, name string, data any) error {
	return r.renderTemplate(w, name, data)
}

func (r *TemplateRenderer) renderTemplate(w http.ResponseWriter, templateName string, data any) error {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, templateName, data); err != nil {
		r.logTemplateError(templateName, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		if r.logger != nil {
			r.logger.Error("failed to write rendered template",
				slog.String("template", templateName),
				slog.Any("error", err),
			)
		}
		return err
	}

	return nil
}

// logTemplateError logs a template execution error with context.
func (r *TemplateRenderer) logTemplateError(templateName string, err error) {
	if r.logger == nil || err == nil {
		return
	}
	r.logger.Error("template execution failed",
		slog.String("template", templateName),
		slog.Any("error", err),
	)
}

// templateFuncs builds the shared func map. The double pointer lets
// renderSection execute against the template set still being parsed.
func templateFuncs(t **template.Template) template.FuncMap {
	return template.FuncMap{
		"sectionTmpl": ContentTemplateFor,
		"renderSection": func(page string, data any) (template.HTML, error) {
			if t == nil || *t == nil {
				return "", errors.New("template not initialized")
			}
			var buf bytes.Buffer
			if err := (*t).ExecuteTemplate(&buf, ContentTemplateFor(page), data); err != nil {
				return "", err
			}
			// #nosec G203 - rendered by our own trusted templates; user
			// values were already auto-escaped during ExecuteTemplate.
			return template.HTML(buf.String()), nil
		},
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
		"eventLabel":   model.EventTypeLabel,
		"friendlyTime": friendlyTimeFunc,
		"relativeTime": relativeTimeFunc,
		"timeTag":      timeTagFunc,
		"truncateText": uiutil.TruncateWithEllipsis,
	}
}

func coerceTime(ts any) time.Time {
	switch v := ts.(type) {
	case time.Time:
		return v
	case *time.Time:
		if v != nil {
			return *v
		}
	}
	return time.Time{}
}

func friendlyTimeFunc(ts any) string {
	return uiutil.FormatFriendlyDateTime(coerceTime(ts))
}

func relativeTimeFunc(ts any) string {
	t0 := coerceTime(ts)
	if t0.IsZero() {
		return ""
	}
	return uiutil.FriendlyRelativeTime(t0)
}

// timeTagFunc emits a <time> element carrying the machine-readable timestamp
// alongside the friendly local rendering.
func timeTagFunc(ts any) template.HTML {
	t0 := coerceTime(ts)
	if t0.IsZero() {
		return ""
	}
	friendly := uiutil.FormatFriendlyDateTime(t0)
	dt := t0.UTC().Format(time.RFC3339)
	title := t0.Local().Format(time.RFC1123)
	// #nosec G203 - constructed from trusted, escaped values only
	return template.HTML(
		fmt.Sprintf(
			"<time datetime=\"%s\" title=\"%s\">%s</time>",
			dt,
			template.HTMLEscapeString(title),
			template.HTMLEscapeString(friendly),
		),
	)
}
