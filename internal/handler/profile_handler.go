package handler

import (
	"errors"
	"net/http"

	"foxscrb-server/internal/middleware"
	"foxscrb-server/internal/render"
	"foxscrb-server/internal/service"
	"foxscrb-server/internal/session"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	sessions       *session.Manager
	renderer       *render.Renderer
	maxFileSize    int64
}

func NewProfileHandler(profileService *service.ProfileService, sessions *session.Manager, renderer *render.Renderer, maxFileSize int64) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		sessions:       sessions,
		renderer:       renderer,
		maxFileSize:    maxFileSize,
	}
}

func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	user, err := h.profileService.Get(userID)
	if err != nil {
		serverError(w, err)
		return
	}

	h.renderer.HTML(w, "profile.html", &render.Data{
		LoggedIn: true,
		Flashes:  h.sessions.Flashes(w, r),
		User:     user,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		h.sessions.AddFlash(w, r, session.FlashError, "Invalid upload")
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	var avatar *service.AvatarUpload
	file, header, err := r.FormFile("profilePicture")
	switch {
	case err == nil:
		defer file.Close()
		avatar = &service.AvatarUpload{
			Filename: header.Filename,
			Data:     file,
		}
	case errors.Is(err, http.ErrMissingFile):
		// no new picture, keep the old one
	default:
		serverError(w, err)
		return
	}

	if _, err := h.profileService.UpdateProfile(userID, r.FormValue("name"), avatar); err != nil {
		serverError(w, err)
		return
	}

	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)

	err := h.profileService.ChangePassword(userID, r.FormValue("password"), r.FormValue("password2"))
	if err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/profile", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "Password changed successfully.")
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
