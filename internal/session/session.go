// Package session wraps gorilla/sessions with the cookie session and the
// one-shot flash messages the app uses between redirects.
package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	userIDKey = "user_id"

	FlashSuccess = "success_msg"
	FlashError   = "error_msg"
)

type Flash struct {
	Kind    string
	Message string
}

type Manager struct {
	store *sessions.CookieStore
	name  string
}

func NewManager(secret, name string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store: store,
		name:  name,
	}
}

// SignIn binds the session cookie to the user identity.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	s, _ := m.store.Get(r, m.name)
	s.Values[userIDKey] = userID
	return s.Save(r, w)
}

// SignOut removes the identity but keeps the session alive so a farewell
// flash still reaches the next page.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, m.name)
	delete(s.Values, userIDKey)
	return s.Save(r, w)
}

// CurrentUserID returns the signed-in user id, or "" for anonymous requests.
func (m *Manager) CurrentUserID(r *http.Request) string {
	s, _ := m.store.Get(r, m.name)
	userID, ok := s.Values[userIDKey].(string)
	if !ok {
		return ""
	}
	return userID
}

// AddFlash queues a one-shot message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, kind, message string) {
	s, _ := m.store.Get(r, m.name)
	s.AddFlash(message, kind)
	s.Save(r, w)
}

// Flashes drains all queued messages. Reading clears them.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s, _ := m.store.Get(r, m.name)

	var flashes []Flash
	for _, kind := range []string{FlashSuccess, FlashError} {
		for _, v := range s.Flashes(kind) {
			if message, ok := v.(string); ok {
				flashes = append(flashes, Flash{Kind: kind, Message: message})
			}
		}
	}

	s.Save(r, w)
	return flashes
}
