package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const testSessionName = "test_session"

func newTestManager() *Manager {
	return NewManager("test-secret-key", testSessionName)
}

// carryCookies builds the follow-up request a browser would send after the
// recorded response. Only the newest cookie per name is kept.
func carryCookies(rec *httptest.ResponseRecorder, method, target string) *http.Request {
	req := httptest.NewRequest(method, target, nil)

	latest := make(map[string]*http.Cookie)
	for _, c := range rec.Result().Cookies() {
		latest[c.Name] = c
	}
	for _, c := range latest {
		req.AddCookie(c)
	}

	return req
}

func TestManager_SignInSignOut(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users/login", nil)

	if got := m.CurrentUserID(req); got != "" {
		t.Errorf("CurrentUserID() before sign-in = %q, want empty", got)
	}

	if err := m.SignIn(rec, req, "user-1"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	req2 := carryCookies(rec, "GET", "/notes")
	if got := m.CurrentUserID(req2); got != "user-1" {
		t.Errorf("CurrentUserID() after sign-in = %q, want user-1", got)
	}

	rec2 := httptest.NewRecorder()
	if err := m.SignOut(rec2, req2); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}

	req3 := carryCookies(rec2, "GET", "/notes")
	if got := m.CurrentUserID(req3); got != "" {
		t.Errorf("CurrentUserID() after sign-out = %q, want empty", got)
	}
}

func TestManager_FlashesAreOneShot(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/users/login", nil)
	m.AddFlash(rec, req, FlashSuccess, "You are now logged in")
	m.AddFlash(rec, req, FlashError, "something minor")

	req2 := carryCookies(rec, "GET", "/notes")
	rec2 := httptest.NewRecorder()
	flashes := m.Flashes(rec2, req2)

	if len(flashes) != 2 {
		t.Fatalf("Flashes() = %v, want 2 messages", flashes)
	}

	var gotSuccess, gotError bool
	for _, f := range flashes {
		switch {
		case f.Kind == FlashSuccess && f.Message == "You are now logged in":
			gotSuccess = true
		case f.Kind == FlashError && f.Message == "something minor":
			gotError = true
		}
	}
	if !gotSuccess || !gotError {
		t.Errorf("Flashes() = %v, missing expected messages", flashes)
	}

	req3 := carryCookies(rec2, "GET", "/notes")
	rec3 := httptest.NewRecorder()
	if again := m.Flashes(rec3, req3); len(again) != 0 {
		t.Errorf("Flashes() second read = %v, want empty", again)
	}
}

func TestManager_FlashSurvivesSignOut(t *testing.T) {
	m := newTestManager()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/logout", nil)
	m.SignIn(rec, req, "user-1")

	req2 := carryCookies(rec, "GET", "/users/logout")
	rec2 := httptest.NewRecorder()
	m.SignOut(rec2, req2)
	m.AddFlash(rec2, req2, FlashSuccess, "You are logged out")

	req3 := carryCookies(rec2, "GET", "/users/login")
	rec3 := httptest.NewRecorder()
	flashes := m.Flashes(rec3, req3)

	if len(flashes) != 1 || flashes[0].Message != "You are logged out" {
		t.Errorf("Flashes() after sign-out = %v, want the farewell message", flashes)
	}
}
