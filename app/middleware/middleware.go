package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/trs-1342/rss-hattab/app/auth"
)

// maxBodyBytes caps JSON request bodies at 512 KB.
const maxBodyBytes = 512 << 10

// Logger logs information about each request
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s took %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// Recoverer recovers from panics and logs the error
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("PANIC: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// ContentTypeJSON sets the Content-Type header to application/json for API
// routes and limits their request body size.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api") {
			w.Header().Set("Content-Type", "application/json")
			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests that do not carry an admin session cookie.
func RequireAdmin(sessions *auth.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromRequest(sessions, r)
			if session == nil || !session.User.IsAdmin {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": "Yetkisiz"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionFromRequest resolves the request's session cookie, returning nil
// when there is no live session.
func SessionFromRequest(sessions *auth.SessionStore, r *http.Request) *auth.Session {
	cookie, err := r.Cookie(auth.CookieName)
	if err != nil {
		return nil
	}
	session, err := sessions.Get(cookie.Value)
	if err != nil {
		return nil
	}
	return session
}
