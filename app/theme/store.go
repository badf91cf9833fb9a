package theme

import (
	"errors"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/linkshort/app/enum"
)

// ErrNotFound is returned by Storage when no value is persisted under the key.
var ErrNotFound = errors.New("preference not found")

// ErrUnavailable is returned by AmbientQuery when the host can't report a preference.
var ErrUnavailable = errors.New("ambient preference unavailable")

// Storage is a durable key-value store for the persisted preference.
type Storage interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// AmbientQuery reports whether the host environment prefers a dark color scheme.
type AmbientQuery interface {
	PrefersDark() (bool, error)
}

// Marker is the document-level flag styling rules key off.
type Marker interface {
	SetDark(on bool)
}

// Env is the environment a Store runs in. Every field is optional, a nil Storage and a nil
// Ambient describe a host without client state and resolve to light.
type Env struct {
	Storage  Storage
	Ambient  AmbientQuery
	Marker   Marker
	OnChange func(enum.Theme) // called after the marker on every state change
}

// Store owns the theme of a single session. It is not safe for concurrent use,
// every session gets its own Store.
type Store struct {
	env   Env
	theme enum.Theme
}

// New creates a Store with the initial theme resolved from env and applies it to the marker.
func New(env Env) *Store {
	s := &Store{env: env, theme: Initialize(env)}
	s.changed()
	return s
}

// Initialize resolves the starting theme for env. It never fails, read errors and query
// errors are treated as "no preference". The ambient query runs only without an explicit preference.
func Initialize(env Env) enum.Theme {
	if env.Storage == nil && env.Ambient == nil {
		return enum.ThemeLight
	}

	stored := ""
	if env.Storage != nil {
		if v, err := env.Storage.Get(Key); err == nil {
			stored = v
		}
	}
	if th, ok := explicit(stored); ok {
		return th
	}

	prefersDark := false
	if env.Ambient != nil {
		if dark, err := env.Ambient.PrefersDark(); err == nil {
			prefersDark = dark
		}
	}

	return Resolve(stored, prefersDark)
}

// Theme returns the current theme.
func (s *Store) Theme() enum.Theme {
	return s.theme
}

// Toggle switches to the opposite theme, persists it and returns the new value.
// Persistence is best effort, a failed write keeps the in-memory state.
func (s *Store) Toggle() enum.Theme {
	s.theme = s.theme.Toggle()
	if s.env.Storage != nil {
		if err := s.env.Storage.Set(Key, s.theme.String()); err != nil {
			log.Printf("[DEBUG] can't persist theme %s: %v", s.theme, err)
		}
	}
	s.changed()
	return s.theme
}

// changed runs once per state transition, including the initial one.
func (s *Store) changed() {
	if s.env.Marker != nil {
		s.env.Marker.SetDark(s.theme.IsDark())
	}
	if s.env.OnChange != nil {
		s.env.OnChange(s.theme)
	}
}
