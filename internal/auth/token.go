package auth

import (
	"errors"
	"net/http"
	"strings"
)

const SessionCookie = "session_token"

var ErrNoToken = errors.New("no session token")

// tokenFrom prefers the session cookie; scripted clients may send
// Authorization: Bearer instead.
func tokenFrom(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if v, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// FromRequest parses the session carried by r. ErrNoToken means the request
// is anonymous; any other error means a token was sent but is unusable.
func (s *Sessions) FromRequest(r *http.Request) (*Claims, error) {
	raw := tokenFrom(r)
	if raw == "" {
		return nil, ErrNoToken
	}
	return s.Parse(raw)
}
