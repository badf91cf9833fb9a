// Package web provides HTTP handlers for the web UI.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-pkgz/routegroup"

	"github.com/umputun/linkshort/app/content"
	"github.com/umputun/linkshort/app/server/internal"
	"github.com/umputun/linkshort/app/theme"
)

//go:generate moq -out mocks/identity.go -pkg mocks -skip-ensure -fmt goimports . Identity

//go:embed static
var staticFS embed.FS

//go:embed templates
var templatesFS embed.FS

// StaticFS returns the embedded static filesystem for external use.
func StaticFS() (fs.FS, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to get static sub-filesystem: %w", err)
	}
	return sub, nil
}

// Identity reports the signed-in user. Sign-in itself is handled by an external identity provider.
type Identity interface {
	UserID(r *http.Request) (string, bool)
}

// Config holds web handler configuration.
type Config struct {
	BaseURL      string
	DashboardURL string // signed-in visitors are sent here from the landing page
	SignInURL    string // external sign-in page, hidden if empty
	SignUpURL    string // external sign-up page, hidden if empty
	Content      content.Content
}

// Handler handles web UI requests.
type Handler struct {
	identity     Identity
	tmpl         *template.Template
	content      content.Content
	baseURL      string
	dashboardURL string
	signInURL    string
	signUpURL    string
	now          func() time.Time
}

// New creates a new web handler.
func New(id Identity, cfg Config) (*Handler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	dashboard := cfg.DashboardURL
	if dashboard == "" {
		dashboard = cfg.BaseURL + "/dashboard"
	}

	return &Handler{
		identity:     id,
		tmpl:         tmpl,
		content:      cfg.Content,
		baseURL:      cfg.BaseURL,
		dashboardURL: dashboard,
		signInURL:    cfg.SignInURL,
		signUpURL:    cfg.SignUpURL,
		now:          time.Now,
	}, nil
}

// Register registers web UI routes on the given router.
// Routes read the theme store from the request context, the router must use theme.Provider.
func (h *Handler) Register(r *routegroup.Bundle) {
	r.HandleFunc("GET /{$}", h.handleIndex)
	r.HandleFunc("POST /theme", h.handleThemeToggle)
}

// icons maps feature icon names to svg path data.
var icons = map[string]string{
	"link":    "M13.828 10.172a4 4 0 00-5.656 0l-4 4a4 4 0 105.656 5.656l1.102-1.101m-.758-4.899a4 4 0 005.656 0l4-4a4 4 0 00-5.656-5.656l-1.1 1.1",
	"chart":   "M9 19v-6a2 2 0 00-2-2H5a2 2 0 00-2 2v6a2 2 0 002 2h2a2 2 0 002-2zm0 0V9a2 2 0 012-2h2a2 2 0 012 2v10m-6 0a2 2 0 002 2h2a2 2 0 002-2m0 0V5a2 2 0 012-2h2a2 2 0 012 2v14a2 2 0 01-2 2h-2a2 2 0 01-2-2z",
	"sliders": "M12 6V4m0 2a2 2 0 100 4m0-4a2 2 0 110 4m-6 8a2 2 0 100-4m0 4a2 2 0 110-4m0 4v2m0-6V4m6 6v10m6-2a2 2 0 100-4m0 4a2 2 0 110-4m0 4v2m0-6V4",
	"qr":      "M12 4v1m6 11h2m-6 0h-2v4m0-11v3m0 0h.01M12 12h4.01M16 20h4M4 12h4m12 0h.01M5 8h2a1 1 0 001-1V5a1 1 0 00-1-1H5a1 1 0 00-1 1v2a1 1 0 001 1zm12 0h2a1 1 0 001-1V5a1 1 0 00-1-1h-2a1 1 0 00-1 1v2a1 1 0 001 1zM5 20h2a1 1 0 001-1v-2a1 1 0 00-1-1H5a1 1 0 00-1 1v2a1 1 0 001 1z",
	"lock":    "M12 15v2m-6 4h12a2 2 0 002-2v-6a2 2 0 00-2-2H6a2 2 0 00-2 2v6a2 2 0 002 2zm10-10V7a4 4 0 00-8 0v4h8z",
	"bolt":    "M13 10V3L4 14h7v7l9-11h-7z",
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"icon": func(name string) string { return icons[name] },
	}
}

// parseTemplates parses all templates from embedded filesystem.
func parseTemplates() (*template.Template, error) {
	tmpl := template.New("").Funcs(templateFuncs())

	// parse base template
	baseContent, err := templatesFS.ReadFile("templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("read base.html: %w", err)
	}
	tmpl, err = tmpl.Parse(string(baseContent))
	if err != nil {
		return nil, fmt.Errorf("parse base.html: %w", err)
	}

	// parse index template
	indexContent, err := templatesFS.ReadFile("templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("read index.html: %w", err)
	}
	_, err = tmpl.New("index.html").Parse(string(indexContent))
	if err != nil {
		return nil, fmt.Errorf("parse index.html: %w", err)
	}

	// parse partials
	partials := []string{"header", "feature"}
	for _, name := range partials {
		partial, readErr := templatesFS.ReadFile("templates/partials/" + name + ".html")
		if readErr != nil {
			return nil, fmt.Errorf("read partial %s: %w", name, readErr)
		}
		_, parseErr := tmpl.New(name).Parse(string(partial))
		if parseErr != nil {
			return nil, fmt.Errorf("parse partial %s: %w", name, parseErr)
		}
	}

	return tmpl, nil
}

// templateData holds data passed to templates.
type templateData struct {
	Content    content.Content
	Footer     string
	Theme      string      // current theme name
	RootClass  string      // class of the <html> element, the document marker
	Guard      template.JS // early-paint script, rendered verbatim into <head>
	Nonce      string      // CSP nonce for inline scripts
	BaseURL    string
	ReturnPath string // where the theme toggle sends the browser back to
	PrefersKey string // form field reporting the browser's ambient preference
	SignInURL  string
	SignUpURL  string
	SignedIn   bool
	Username   string
}

// pageData builds the template data shared by every page of the layout.
func (h *Handler) pageData(r *http.Request) templateData {
	st := theme.FromContext(r.Context())
	doc := theme.DocumentFromContext(r.Context())
	username, signedIn := h.currentUser(r)
	return templateData{
		Content:    h.content,
		Footer:     h.content.FooterText(h.now()),
		Theme:      st.Theme().String(),
		RootClass:  doc.RootClass(),
		Guard:      template.JS(theme.GuardScript()), //nolint:gosec // generated from a fixed template
		Nonce:      internal.Nonce(r.Context()),
		BaseURL:    h.baseURL,
		ReturnPath: h.url(r.URL.Path),
		PrefersKey: theme.FormField,
		SignInURL:  h.signInURL,
		SignUpURL:  h.signUpURL,
		SignedIn:   signedIn,
		Username:   username,
	}
}

// currentUser returns the signed-in user, if any.
func (h *Handler) currentUser(r *http.Request) (string, bool) {
	if h.identity == nil {
		return "", false
	}
	return h.identity.UserID(r)
}

// url returns a URL path with the base URL prefix.
func (h *Handler) url(path string) string {
	return h.baseURL + path
}
