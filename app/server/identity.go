package server

import (
	"net/http"
	"strings"
)

// HeaderIdentity reads the signed-in user from a header set by an identity-aware proxy in front
// of the server. The header is trusted as is, the proxy must strip it from client requests.
type HeaderIdentity struct {
	Header string
}

// UserID returns the user id from the header, or false if the header is missing or blank.
func (h *HeaderIdentity) UserID(r *http.Request) (string, bool) {
	if h.Header == "" {
		return "", false
	}
	user := strings.TrimSpace(r.Header.Get(h.Header))
	if user == "" {
		return "", false
	}
	return user, true
}
