package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/umputun/linkshort/app/server/internal"
	"github.com/umputun/linkshort/app/theme"
)

// SecurityHeaders sets the content security policy with a per-request script nonce
// and the usual hardening headers. The guard script is allowed by both its nonce and its hash,
// the hash keeps cached pages working.
func SecurityHeaders(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		nonce := uuid.NewString()
		csp := fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' '%s'; style-src 'self'; img-src 'self' data:; "+
			"base-uri 'self'; form-action 'self'; frame-ancestors 'none'", nonce, theme.GuardHash())
		w.Header().Set("Content-Security-Policy", csp)
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r.WithContext(internal.WithNonce(r.Context(), nonce)))
	}
	return http.HandlerFunc(fn)
}
