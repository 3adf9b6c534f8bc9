package utils

import (
	"net/http"
	"strings"
	"time"
)

// CookieConfig describes the session cookie handed to browsers.
type CookieConfig struct {
	Name     string
	Domain   string
	Path     string
	Secure   bool // true behind HTTPS
	SameSite http.SameSite
}

func NewCookieConfig(session SessionConfig) CookieConfig {
	name := session.CookieName
	if name == "" {
		name = "auth_token"
	}
	return CookieConfig{
		Name:     name,
		Domain:   session.CookieDomain,
		Path:     "/",
		Secure:   session.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetSessionCookie sets the HttpOnly session cookie with the given lifetime.
func SetSessionCookie(w http.ResponseWriter, token string, ttl time.Duration, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    token,
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
	})
}

// ClearSessionCookie tells the client to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter, cfg CookieConfig) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Name,
		Value:    "",
		Path:     cfg.Path,
		Domain:   cfg.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: cfg.SameSite,
	})
}

// SessionTokenFromRequest reads the session cookie, falling back to "Authorization: Bearer <token>".
func SessionTokenFromRequest(r *http.Request, cfg CookieConfig) (string, bool) {
	if cookie, err := r.Cookie(cfg.Name); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok && strings.TrimSpace(token) != "" {
		return strings.TrimSpace(token), true
	}

	return "", false
}
