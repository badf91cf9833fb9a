package web

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/linkshort/app/content"
	"github.com/umputun/linkshort/app/server/web/mocks"
)

// newTestHandler creates a handler with default content and the given identity.
func newTestHandler(t *testing.T, id Identity, cfg Config) *Handler {
	t.Helper()
	c, err := content.Default()
	require.NoError(t, err)
	cfg.Content = c
	h, err := New(id, cfg)
	require.NoError(t, err)
	h.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	return h
}

func signedOut() *mocks.IdentityMock {
	return &mocks.IdentityMock{UserIDFunc: func(*http.Request) (string, bool) { return "", false }}
}

func TestNew(t *testing.T) {
	h := newTestHandler(t, nil, Config{BaseURL: "/ls"})
	assert.Equal(t, "/ls/dashboard", h.dashboardURL, "dashboard defaults under base URL")
	assert.NotNil(t, h.tmpl.Lookup("base.html"))
	assert.NotNil(t, h.tmpl.Lookup("content"))
	assert.NotNil(t, h.tmpl.Lookup("header"))
	assert.NotNil(t, h.tmpl.Lookup("feature"))

	h = newTestHandler(t, nil, Config{DashboardURL: "https://app.example.com/dashboard"})
	assert.Equal(t, "https://app.example.com/dashboard", h.dashboardURL)
}

func TestStaticFS(t *testing.T) {
	sfs, err := StaticFS()
	require.NoError(t, err)
	for _, name := range []string{"style.css", "theme.js"} {
		f, err := sfs.Open(name)
		require.NoError(t, err, name)
		require.NoError(t, f.Close())
	}
}

func TestIcons_CoverContentIcons(t *testing.T) {
	for _, name := range content.Icons {
		assert.NotEmpty(t, icons[name], "no svg for icon %q", name)
	}
}

func TestHandler_CurrentUser(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "/", http.NoBody)
	require.NoError(t, err)

	h := newTestHandler(t, nil, Config{})
	_, ok := h.currentUser(req)
	assert.False(t, ok, "no identity configured")

	id := &mocks.IdentityMock{UserIDFunc: func(*http.Request) (string, bool) { return "user_1", true }}
	h = newTestHandler(t, id, Config{})
	user, ok := h.currentUser(req)
	assert.True(t, ok)
	assert.Equal(t, "user_1", user)
	assert.Len(t, id.UserIDCalls(), 1)
}
