package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kinship-labs/kinship-ui/internal/apiclient"
	"github.com/kinship-labs/kinship-ui/internal/http/ui/viewmodel"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

func collaboratorFormMeta() PageMeta {
	return PageMeta{
		Title:       "Add Collaborator - Kinship",
		PageTitle:   "Add Collaborator",
		CurrentPage: PageCollaboratorForm,
	}
}

// formRenderMode resolves the mode param; unknown values fall back to modal,
// the mode the overview panel opens the picker in.
func formRenderMode(r *http.Request) FormRenderMode {
	if r.URL.Query().Get("mode") == string(FormRenderInline) {
		return FormRenderInline
	}
	return FormRenderModal
}

// CollaboratorNew renders the collaborator picker form.
// GET /projects/{id}/collaborators/new?mode=modal|inline.
func (h *UIHandlers) CollaboratorNew(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}

	data := h.collaboratorFormData(r, collaboratorFormState{ProjectID: projectID, Mode: formRenderMode(r)})
	h.renderCollaboratorForm(w, r, data)
}

// PeopleSearch renders directory search results for the picker.
// GET /people/search?q=<term>.
func (h *UIHandlers) PeopleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	people, err := h.Collaborators.SearchPeople(r.Context(), query)
	if err != nil {
		h.logger().ErrorContext(r.Context(), "people search failed", "error", err)
		renderErr := h.T.RenderNamed(w, "people-results", map[string]any{
			"Error":        true,
			"ErrorMessage": apiclient.ErrorMessage(err),
			"Query":        query,
		})
		if renderErr != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	if err := h.T.RenderNamed(w, "people-results", map[string]any{
		"People":   viewmodel.PersonRows(people),
		"Query":    query,
		"PersonID": strings.TrimSpace(r.URL.Query().Get("person_id")),
	}); err != nil {
		h.logAndRenderTemplateError(w, r, err, "people search render")
	}
}

// CollaboratorCreate links a directory person to the project.
// POST /projects/{id}/collaborators.
func (h *UIHandlers) CollaboratorCreate(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	state := collaboratorFormState{
		ProjectID: projectID,
		Mode:      FormRenderMode(r.FormValue("mode")),
		PersonID:  strings.TrimSpace(r.FormValue("person_id")),
		Notes:     r.FormValue("notes"),
		Query:     strings.TrimSpace(r.FormValue("q")),
	}
	if state.Mode != FormRenderInline {
		state.Mode = FormRenderModal
	}

	project, err := h.Projects.Get(r.Context(), projectID)
	if err != nil {
		h.renderCollaboratorError(w, r, state, err)
		return
	}
	if project.IsCompleted() {
		writeProjectReadOnly(w)
		return
	}

	if err := h.Collaborators.Add(r.Context(), projectID, state.PersonID, state.Notes); err != nil {
		h.renderCollaboratorError(w, r, state, err)
		return
	}

	triggerToast(w, "Collaborator added.", "success")
	if IsHTMX(r) {
		// The modal closes and the client refreshes the summary widget.
		HTMX(w).Trigger("collaborator:added", map[string]string{"projectId": projectID})
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/projects/"+projectID, http.StatusSeeOther)
}

// renderCollaboratorError re-renders the form with the typed notes and search
// term preserved so the submitter only has to fix the selection.
func (h *UIHandlers) renderCollaboratorError(
	w http.ResponseWriter,
	r *http.Request,
	state collaboratorFormState,
	submitErr error,
) {
	msg := apiclient.ErrorMessage(submitErr)
	fieldErrs := map[string]string{}
	if errors.Is(submitErr, service.ErrNoPersonSelected) {
		msg = "Please select a person from the directory."
		fieldErrs["person_id"] = msg
	} else {
		h.logger().ErrorContext(r.Context(), "collaborator add failed",
			"project_id", state.ProjectID, "error", submitErr)
	}

	data := h.collaboratorFormData(r, state)
	markPageError(data, msg)
	if len(fieldErrs) > 0 {
		data["Errors"] = fieldErrs
	}

	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderCollaboratorForm(w, r, data)
}

// collaboratorFormState carries the form's sticky fields across a rejected
// submit.
type collaboratorFormState struct {
	ProjectID string
	Mode      FormRenderMode
	PersonID  string
	Notes     string
	Query     string
}

func (h *UIHandlers) collaboratorFormData(r *http.Request, state collaboratorFormState) map[string]any {
	return NewTemplateData(r, collaboratorFormMeta()).
		With("ProjectID", state.ProjectID).
		With("Mode", string(state.Mode)).
		With("PersonID", state.PersonID).
		With("Notes", state.Notes).
		With("Query", state.Query).
		Build()
}

// renderCollaboratorForm picks the fragment for htmx (modal swap) or the full
// page for direct navigation.
func (h *UIHandlers) renderCollaboratorForm(w http.ResponseWriter, r *http.Request, data map[string]any) {
	if WantsPartial(r) {
		if err := h.T.RenderNamed(w, ContentTemplateFor(PageCollaboratorForm), data); err != nil {
			h.logAndRenderTemplateError(w, r, err, "collaborator form render")
		}
		return
	}
	if err := h.T.RenderFull(w, r, data); err != nil {
		h.logAndRenderTemplateError(w, r, err, "collaborator form full render")
	}
}
