package httpx

// CurrentPage constants identify pages for navigation state and template
// selection. Keep these in sync with contentTemplates below.
const (
	PageHome = "home"

	// Project tab pages.
	PageOverview = "project-overview"
	PageActivity = "project-activity"
	PageNotes    = "project-notes"
	PageTimeline = "project-timeline"

	// Collaborator picker (modal or standalone page).
	PageCollaboratorForm = "collaborator-form"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// FormRenderMode selects how the collaborator form is framed: as a modal
// overlay or inline within the page flow.
type FormRenderMode string

const (
	FormRenderModal  FormRenderMode = "modal"
	FormRenderInline FormRenderMode = "inline"
)

// Content templates are defined once and reused to avoid per-call allocations.
//
//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageHome:             "home-content",
	PageOverview:         "overview-content",
	PageActivity:         "activity-content",
	PageNotes:            "notes-content",
	PageTimeline:         "timeline-content",
	PageCollaboratorForm: "collaborator-form-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to home-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "home-content"
}
