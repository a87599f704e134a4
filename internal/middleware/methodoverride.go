package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride lets HTML forms issue PUT/PATCH/DELETE by posting a
// `_method` field. It must wrap the router (not run inside it), because
// the method has to be rewritten before route matching.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			// ParseForm caches the body in r.PostForm; handlers
			// downstream read the same cache.
			if err := r.ParseForm(); err == nil {
				switch strings.ToUpper(r.PostFormValue("_method")) {
				case http.MethodPut:
					r.Method = http.MethodPut
				case http.MethodPatch:
					r.Method = http.MethodPatch
				case http.MethodDelete:
					r.Method = http.MethodDelete
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}
