package handler

import (
	"net/http"

	"foxscrb-server/internal/domain"
	"foxscrb-server/internal/middleware"
	"foxscrb-server/internal/render"
	"foxscrb-server/internal/service"
	"foxscrb-server/internal/session"

	"github.com/gorilla/mux"
)

type NoteHandler struct {
	noteService *service.NoteService
	sessions    *session.Manager
	renderer    *render.Renderer
}

func NewNoteHandler(noteService *service.NoteService, sessions *session.Manager, renderer *render.Renderer) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
		sessions:    sessions,
		renderer:    renderer,
	}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	search := r.URL.Query().Get("search")

	notes, err := h.noteService.List(userID, search)
	if err != nil {
		serverError(w, err)
		return
	}

	h.renderer.HTML(w, "notes.html", &render.Data{
		LoggedIn: true,
		Flashes:  h.sessions.Flashes(w, r),
		Notes:    notes,
		Search:   search,
	})
}

func (h *NoteHandler) ShowAdd(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, "add_note.html", &render.Data{
		LoggedIn: true,
		Flashes:  h.sessions.Flashes(w, r),
	})
}

func (h *NoteHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	req := &domain.NoteRequest{
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}

	if _, err := h.noteService.Create(userID, req); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/notes/add", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "Note added successfully")
	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

func (h *NoteHandler) ShowEdit(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	noteID := mux.Vars(r)["id"]

	note, err := h.noteService.GetOwned(userID, noteID)
	if err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/notes", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.renderer.HTML(w, "edit_note.html", &render.Data{
		LoggedIn: true,
		Flashes:  h.sessions.Flashes(w, r),
		Note:     note,
	})
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	noteID := mux.Vars(r)["id"]
	req := &domain.NoteRequest{
		Title: r.FormValue("title"),
		Body:  r.FormValue("body"),
	}

	if _, err := h.noteService.Update(userID, noteID, req); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/notes", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "Note updated successfully")
	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	noteID := mux.Vars(r)["id"]

	if err := h.noteService.Delete(userID, noteID); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/notes", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "Note removed")
	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

func (h *NoteHandler) Archive(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	noteID := mux.Vars(r)["id"]

	if err := h.noteService.Archive(userID, noteID); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/notes", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

func (h *NoteHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	noteID := mux.Vars(r)["id"]

	if err := h.noteService.Unarchive(userID, noteID); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/notes/archive", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/notes/archive", http.StatusSeeOther)
}

func (h *NoteHandler) ListArchived(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	notes, err := h.noteService.ListArchived(userID)
	if err != nil {
		serverError(w, err)
		return
	}

	h.renderer.HTML(w, "archive_notes.html", &render.Data{
		LoggedIn: true,
		Flashes:  h.sessions.Flashes(w, r),
		Notes:    notes,
	})
}
