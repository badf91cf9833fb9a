// Package theme resolves, holds and persists the light/dark display theme of a session.
//
// The decision is made in one place, Resolve, and both call sites use it: the interactive
// Store created for every request and the inline guard script that runs in the browser before
// first paint. The guard is rendered from the same Decisions table, so the two can't diverge.
package theme

import "github.com/umputun/linkshort/app/enum"

// Key is the storage key holding the persisted preference.
const Key = "theme"

// Decision maps a persisted value to the theme it selects.
type Decision struct {
	Stored string
	Theme  enum.Theme
}

// Decisions lists the persisted values that select a theme explicitly.
// Any other value, including an absent one, falls back to the ambient preference.
var Decisions = []Decision{
	{Stored: enum.ThemeDark.String(), Theme: enum.ThemeDark},
	{Stored: enum.ThemeLight.String(), Theme: enum.ThemeLight},
}

// Resolve returns the theme for a persisted value and the ambient dark preference.
// An empty or unknown stored value means "no explicit preference".
func Resolve(stored string, prefersDark bool) enum.Theme {
	if th, ok := explicit(stored); ok {
		return th
	}
	if prefersDark {
		return enum.ThemeDark
	}
	return enum.ThemeLight
}

// explicit returns the theme selected by a persisted value, if it selects one.
func explicit(stored string) (enum.Theme, bool) {
	for _, d := range Decisions {
		if d.Stored == stored {
			return d.Theme, true
		}
	}
	return enum.Theme{}, false
}
