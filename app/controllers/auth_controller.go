package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/trs-1342/rss-hattab/app/auth"
	"github.com/trs-1342/rss-hattab/app/middleware"
	"github.com/trs-1342/rss-hattab/app/models"
)

// AuthController handles login, logout and session introspection for the
// single configured admin account.
type AuthController struct {
	sessions      *auth.SessionStore
	adminUser     string
	adminPassHash string
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions *auth.SessionStore, adminUser, adminPassHash string) *AuthController {
	return &AuthController{
		sessions:      sessions,
		adminUser:     adminUser,
		adminPassHash: adminPassHash,
	}
}

// Login verifies the admin credentials and starts a session.
func (ac *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Geçersiz JSON", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		sendError(w, "Eksik alan", http.StatusBadRequest)
		return
	}
	if req.Username != ac.adminUser {
		sendError(w, "Geçersiz kullanıcı", http.StatusUnauthorized)
		return
	}
	if !auth.CheckPassword(ac.adminPassHash, req.Password) {
		sendError(w, "Parola hatalı", http.StatusUnauthorized)
		return
	}

	session, err := ac.sessions.Create(models.User{Username: req.Username, IsAdmin: true})
	if err != nil {
		sendError(w, "Sunucu hatası", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie(session.Token, int(auth.SessionTTL.Seconds())))
	sendJSON(w, map[string]interface{}{"ok": true, "user": session.User})
}

// Logout ends the current session, if any, and expires the cookie.
func (ac *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(auth.CookieName); err == nil {
		ac.sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, sessionCookie("", -1))
	sendJSON(w, map[string]interface{}{"ok": true})
}

// Me reports the session's user claim, or null for anonymous requests.
func (ac *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFromRequest(ac.sessions, r)
	if session == nil {
		sendJSON(w, map[string]interface{}{"user": nil})
		return
	}
	sendJSON(w, map[string]interface{}{"user": session.User})
}

func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}
