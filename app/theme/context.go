package theme

import (
	"context"
	"net/http"
)

type ctxKey struct{}

// scope is what a provider places in the request context.
type scope struct {
	store *Store
	doc   *Document
}

// WithStore returns a copy of ctx holding the store and the document it marks.
func WithStore(ctx context.Context, st *Store, doc *Document) context.Context {
	return context.WithValue(ctx, ctxKey{}, scope{store: st, doc: doc})
}

// Lookup returns the store in scope, if any.
func Lookup(ctx context.Context) (*Store, bool) {
	sc, ok := ctx.Value(ctxKey{}).(scope)
	if !ok || sc.store == nil {
		return nil, false
	}
	return sc.store, true
}

// FromContext returns the store in scope. It panics when called outside a provider,
// which means the handler was mounted without the Provider middleware.
func FromContext(ctx context.Context) *Store {
	st, ok := Lookup(ctx)
	if !ok {
		panic("theme: FromContext must be used within a theme provider")
	}
	return st
}

// DocumentFromContext returns the document marked by the store in scope. It panics outside a provider.
func DocumentFromContext(ctx context.Context) *Document {
	sc, ok := ctx.Value(ctxKey{}).(scope)
	if !ok || sc.doc == nil {
		panic("theme: DocumentFromContext must be used within a theme provider")
	}
	return sc.doc
}

// ProviderConfig defines how the provider persists the preference and reads the ambient hint.
type ProviderConfig struct {
	CookiePath   string // cookie path, "/" if empty
	SecureCookie bool   // set the Secure flag on the preference cookie
	Hints        bool   // ask browsers for the Sec-CH-Prefers-Color-Scheme hint
}

// Provider returns middleware creating a Store for every request and placing it in the context.
// The ambient preference comes from the prefers_dark form field first, then from the client hint.
func Provider(cfg ProviderConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if cfg.Hints {
				w.Header().Set("Accept-CH", HintHeader)
				w.Header().Set("Critical-CH", HintHeader)
				w.Header().Add("Vary", HintHeader)
			}
			w.Header().Add("Vary", "Cookie")

			ambient := Ambients{&FormQuery{Request: r}}
			if cfg.Hints {
				ambient = append(ambient, &HintQuery{Request: r})
			}
			doc := &Document{}
			st := New(Env{
				Storage: &CookieStorage{Request: r, Writer: w, Path: cfg.CookiePath, Secure: cfg.SecureCookie},
				Ambient: ambient,
				Marker:  doc,
			})
			next.ServeHTTP(w, r.WithContext(WithStore(r.Context(), st, doc)))
		}
		return http.HandlerFunc(fn)
	}
}
