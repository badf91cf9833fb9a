package web

import (
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/linkshort/app/server/internal"
	"github.com/umputun/linkshort/app/theme"
)

// handleIndex renders the landing page, signed-in users go to the dashboard.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if user, ok := h.currentUser(r); ok {
		log.Printf("[DEBUG] user %s is signed in, redirect to %s", user, h.dashboardURL)
		http.Redirect(w, r, h.dashboardURL, http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "base.html", h.pageData(r)); err != nil {
		log.Printf("[ERROR] failed to execute template: %v", err)
	}
}

// handleThemeToggle toggles the theme between light and dark.
func (h *Handler) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	newTheme := theme.FromContext(r.Context()).Toggle()
	log.Printf("[DEBUG] theme switched to %s", newTheme)

	// htmx requests refresh the page in place
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Refresh", "true")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, internal.SafeReturnPath(r.PostFormValue("return"), h.url("/")), http.StatusSeeOther)
}
