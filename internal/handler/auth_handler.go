package handler

import (
	"net/http"

	"foxscrb-server/internal/domain"
	"foxscrb-server/internal/render"
	"foxscrb-server/internal/service"
	"foxscrb-server/internal/session"
)

type AuthHandler struct {
	authService *service.AuthService
	sessions    *session.Manager
	renderer    *render.Renderer
}

func NewAuthHandler(authService *service.AuthService, sessions *session.Manager, renderer *render.Renderer) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		renderer:    renderer,
	}
}

func (h *AuthHandler) ShowRegister(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, "register.html", &render.Data{
		Flashes: h.sessions.Flashes(w, r),
	})
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	req := &domain.RegisterRequest{
		Name:      r.FormValue("name"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Password2: r.FormValue("password2"),
	}

	if _, err := h.authService.Register(req); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/users/register", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "You are now registered and can log in")
	http.Redirect(w, r, "/users/login", http.StatusSeeOther)
}

func (h *AuthHandler) ShowLogin(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, "login.html", &render.Data{
		Flashes: h.sessions.Flashes(w, r),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	req := &domain.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	user, err := h.authService.Authenticate(req)
	if err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/users/login", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	if err := h.sessions.SignIn(w, r, user.ID); err != nil {
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "You are now logged in")
	http.Redirect(w, r, "/notes", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.SignOut(w, r); err != nil {
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "You are logged out")
	http.Redirect(w, r, "/users/login", http.StatusSeeOther)
}

func (h *AuthHandler) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.renderer.HTML(w, "forgot_password.html", &render.Data{
		Flashes: h.sessions.Flashes(w, r),
	})
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.ForgotPassword(r.FormValue("email")); err != nil {
		if isUserError(err) {
			flashErrors(h.sessions, w, r, err)
			http.Redirect(w, r, "/users/forgot-password", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}

	h.sessions.AddFlash(w, r, session.FlashSuccess, "Password reset instructions have been sent to your email")
	http.Redirect(w, r, "/users/login", http.StatusSeeOther)
}
