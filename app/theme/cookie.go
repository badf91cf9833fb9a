package theme

import (
	"fmt"
	"net/http"
	"strings"
)

// HintHeader is the client hint carrying the user agent's preferred color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// CookieStorage persists values as cookies. Reads come from the request, writes go to the response.
// Cookies are not HttpOnly, the guard script reads them before first paint.
type CookieStorage struct {
	Request *http.Request
	Writer  http.ResponseWriter
	Path    string
	Secure  bool

	written map[string]string
}

// Get returns the cookie value for key, or ErrNotFound if the cookie is missing or empty.
// Values set during the same request take precedence.
func (c *CookieStorage) Get(key string) (string, error) {
	if v, ok := c.written[key]; ok {
		return v, nil
	}
	if c.Request == nil {
		return "", ErrNotFound
	}
	cookie, err := c.Request.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", ErrNotFound
	}
	return cookie.Value, nil
}

// Set writes the cookie for key to the response.
func (c *CookieStorage) Set(key, value string) error {
	if c.Writer == nil {
		return fmt.Errorf("set %s: no response writer", key)
	}
	path := c.Path
	if path == "" {
		path = "/"
	}
	cookie := &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     path,
		MaxAge:   cookieMaxAge,
		Secure:   c.Secure,
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	}
	if err := cookie.Valid(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	http.SetCookie(c.Writer, cookie)
	if c.written == nil {
		c.written = map[string]string{}
	}
	c.written[key] = value
	return nil
}

// HintQuery answers the ambient preference from the Sec-CH-Prefers-Color-Scheme request header.
type HintQuery struct {
	Request *http.Request
}

// PrefersDark reports whether the hint says "dark". A missing or unknown hint is ErrUnavailable.
func (h *HintQuery) PrefersDark() (bool, error) {
	if h.Request == nil {
		return false, ErrUnavailable
	}
	// structured header string, sent quoted
	v := strings.Trim(strings.TrimSpace(h.Request.Header.Get(HintHeader)), `"`)
	switch strings.ToLower(v) {
	case "dark":
		return true, nil
	case "light":
		return false, nil
	default:
		return false, ErrUnavailable
	}
}

// FormField is the form field the toggle form fills with the browser's matchMedia result.
const FormField = "prefers_dark"

// FormQuery answers the ambient preference from a form field reported by the browser.
type FormQuery struct {
	Request *http.Request
}

// PrefersDark parses the prefers_dark form field. Only POST forms are consulted.
func (f *FormQuery) PrefersDark() (bool, error) {
	if f.Request == nil || f.Request.Method != http.MethodPost {
		return false, ErrUnavailable
	}
	switch f.Request.PostFormValue(FormField) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	default:
		return false, ErrUnavailable
	}
}

// Ambients tries each query in order and returns the first answer.
type Ambients []AmbientQuery

// PrefersDark returns the first successful answer, or ErrUnavailable if none answers.
func (a Ambients) PrefersDark() (bool, error) {
	for _, q := range a {
		if dark, err := q.PrefersDark(); err == nil {
			return dark, nil
		}
	}
	return false, ErrUnavailable
}
