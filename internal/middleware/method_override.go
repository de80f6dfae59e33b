package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms carry PUT and DELETE: a POST with a
// `_method` field is rewritten before routing. Must wrap the router itself,
// not be mounted on it, or the route match happens on the original method.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			ct := r.Header.Get("Content-Type")
			if strings.HasPrefix(ct, "application/x-www-form-urlencoded") {
				r.ParseForm()
				switch strings.ToUpper(r.PostFormValue("_method")) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}

		next.ServeHTTP(w, r)
	})
}
