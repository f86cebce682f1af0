package httpx

import (
	"errors"
	"net/http"
	"strings"

	"github.com/kinship-labs/kinship-ui/internal/apiclient"
	"github.com/kinship-labs/kinship-ui/internal/http/ui/viewmodel"
	"github.com/kinship-labs/kinship-ui/internal/service"
)

func notesPageMeta() PageMeta {
	return PageMeta{
		Title:       "Research Notes - Kinship",
		PageTitle:   "Research Notes",
		CurrentPage: PageNotes,
	}
}

// NotesPage renders the research note log tab: the note list plus the entry
// form when the viewer may write to this project.
// GET /projects/{id}/notes.
func (h *UIHandlers) NotesPage(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}

	data, err := h.notesPageData(r, projectID, "")
	if err != nil {
		h.logger().ErrorContext(r.Context(), "notes page load failed",
			"project_id", projectID, "error", err)
		data = NewTemplateData(r, notesPageMeta()).
			With("ProjectID", projectID).
			WithError(apiclient.ErrorMessage(err)).
			Build()
	}
	h.renderDashboardPage(w, r, data)
}

// NoteCreate appends a research note.
// POST /projects/{id}/notes.
func (h *UIHandlers) NoteCreate(w http.ResponseWriter, r *http.Request) {
	projectID := r.PathValue("id")
	if projectID == "" {
		h.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form submission", http.StatusBadRequest)
		return
	}

	text := r.FormValue("text")

	project, err := h.Projects.Get(r.Context(), projectID)
	if err != nil {
		h.renderNoteError(w, r, noteErrorParams{ProjectID: projectID, Text: text, Err: err})
		return
	}
	if project.IsCompleted() {
		writeProjectReadOnly(w)
		return
	}

	if err := h.Notes.Add(r.Context(), projectID, text); err != nil {
		h.renderNoteError(w, r, noteErrorParams{ProjectID: projectID, Text: text, Err: err})
		return
	}

	// Entry box clears; the refreshed list includes the new note.
	triggerToast(w, "Note added.", "success")
	data, err := h.notesPageData(r, projectID, "")
	if err != nil {
		h.logger().ErrorContext(r.Context(), "notes refresh after create failed",
			"project_id", projectID, "error", err)
		data = NewTemplateData(r, notesPageMeta()).
			With("ProjectID", projectID).
			WithError(apiclient.ErrorMessage(err)).
			Build()
	}
	h.renderDashboardPage(w, r, data)
}

type noteErrorParams struct {
	ProjectID string
	Text      string
	Err       error
}

// renderNoteError re-renders the notes tab with the rejected draft preserved
// so the author can fix it in place.
func (h *UIHandlers) renderNoteError(w http.ResponseWriter, r *http.Request, p noteErrorParams) {
	msg := apiclient.ErrorMessage(p.Err)
	fieldErrs := map[string]string{}
	if errors.Is(p.Err, service.ErrEmptyNote) {
		msg = "Please enter a note before saving."
		fieldErrs["text"] = msg
	} else {
		h.logger().ErrorContext(r.Context(), "note create failed",
			"project_id", p.ProjectID, "error", p.Err)
	}

	data, err := h.notesPageData(r, p.ProjectID, p.Text)
	if err != nil {
		data = NewTemplateData(r, notesPageMeta()).
			With("ProjectID", p.ProjectID).
			With("NoteText", p.Text).
			Build()
	}
	markPageError(data, msg)
	if len(fieldErrs) > 0 {
		data["Errors"] = fieldErrs
	}

	w.WriteHeader(http.StatusUnprocessableEntity)
	h.renderDashboardPage(w, r, data)
}

// notesPageData loads the note list and write-access gating for the tab.
// Completed projects never show the entry form, regardless of access level.
func (h *UIHandlers) notesPageData(r *http.Request, projectID, draft string) (map[string]any, error) {
	project, err := h.Projects.Get(r.Context(), projectID)
	if err != nil {
		return nil, err
	}

	notes, err := h.Notes.List(r.Context(), projectID)
	if err != nil {
		return nil, err
	}

	canWrite := CanEditProject(r.Context()) && !project.IsCompleted()

	return NewTemplateData(r, notesPageMeta()).
		With("ProjectID", projectID).
		With("Project", viewmodel.NewProjectSummary(*project)).
		With("Notes", viewmodel.EventRows(notes)).
		With("NoteText", strings.TrimRight(draft, "\n")).
		With("CanWrite", canWrite).
		Build(), nil
}
