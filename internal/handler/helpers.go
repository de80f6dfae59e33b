package handler

import (
	"errors"
	"log"
	"net/http"

	"foxscrb-server/internal/service"
	"foxscrb-server/internal/session"
)

// isUserError reports whether the failure should become a flash message on a
// redirect rather than a server-error response.
func isUserError(err error) bool {
	var (
		verr *service.ValidationError
		aerr *service.AuthenticationError
		nerr *service.NotAuthorizedError
		derr *service.DuplicateEmailError
		ferr *service.NotFoundError
	)
	return errors.As(err, &verr) ||
		errors.As(err, &aerr) ||
		errors.As(err, &nerr) ||
		errors.As(err, &derr) ||
		errors.As(err, &ferr)
}

// flashErrors queues every message of a user-facing failure. Validation
// failures can carry several itemized messages; everything else carries one.
func flashErrors(sessions *session.Manager, w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		for _, msg := range verr.Messages {
			sessions.AddFlash(w, r, session.FlashError, msg)
		}
		return
	}

	sessions.AddFlash(w, r, session.FlashError, err.Error())
}

// serverError is the uniform persistence-failure policy: log the cause, show
// a bare 500.
func serverError(w http.ResponseWriter, err error) {
	log.Printf("server error: %v", err)
	http.Error(w, "Server Error", http.StatusInternalServerError)
}
