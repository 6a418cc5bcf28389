// Package cookie centralizes the session cookie transport policy.
package cookie

import (
	"net/http"
	"time"

	"clinicdesk/config"
)

// Policy stamps session cookies with one fixed attribute set so every
// endpoint that touches the cookie agrees on its shape.
type Policy struct {
	name string
}

// New builds the cookie policy from configuration.
func New(cfg *config.Config) *Policy {
	return &Policy{name: cfg.Auth.CookieName}
}

// Name returns the session cookie name.
func (p *Policy) Name() string {
	return p.name
}

// Session builds the Set-Cookie value that installs a session token.
// Secure is always set; over plain HTTP in local development the browser
// simply ignores the flag, so there is no insecure variant to misconfigure.
func (p *Policy) Session(token string, ttl time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     p.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Clear builds the Set-Cookie value that removes the session cookie. The
// attributes must match Session's or browsers treat it as a different cookie.
func (p *Policy) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     p.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

// Read extracts the session token from a request. A missing cookie reads as
// an empty token.
func (p *Policy) Read(r *http.Request) string {
	c, err := r.Cookie(p.name)
	if err != nil {
		return ""
	}

	return c.Value
}
