package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/linkshort/app/enum"
)

// memStorage is an in-memory Storage; setErr makes every write fail.
type memStorage struct {
	data   map[string]string
	getErr error
	setErr error
	writes int
}

func newMemStorage(kv ...string) *memStorage {
	m := &memStorage{data: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		m.data[kv[i]] = kv[i+1]
	}
	return m
}

func (m *memStorage) Get(key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memStorage) Set(key, value string) error {
	m.writes++
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

type ambient struct {
	dark bool
	err  error
}

func (a ambient) PrefersDark() (bool, error) { return a.dark, a.err }

// countingAmbient counts queries.
type countingAmbient struct {
	calls int
}

func (c *countingAmbient) PrefersDark() (bool, error) {
	c.calls++
	return true, nil
}

// recMarker records every marker update.
type recMarker struct {
	calls []bool
}

func (r *recMarker) SetDark(on bool) { r.calls = append(r.calls, on) }

func TestInitialize(t *testing.T) {
	t.Run("no environment defaults to light", func(t *testing.T) {
		assert.Equal(t, enum.ThemeLight, Initialize(Env{}))
	})

	t.Run("stored dark wins over ambient", func(t *testing.T) {
		for _, amb := range []bool{true, false} {
			env := Env{Storage: newMemStorage(Key, "dark"), Ambient: ambient{dark: amb}}
			assert.Equal(t, enum.ThemeDark, Initialize(env))
		}
	})

	t.Run("stored light wins over ambient", func(t *testing.T) {
		for _, amb := range []bool{true, false} {
			env := Env{Storage: newMemStorage(Key, "light"), Ambient: ambient{dark: amb}}
			assert.Equal(t, enum.ThemeLight, Initialize(env))
		}
	})

	t.Run("no stored value uses ambient", func(t *testing.T) {
		assert.Equal(t, enum.ThemeDark, Initialize(Env{Storage: newMemStorage(), Ambient: ambient{dark: true}}))
		assert.Equal(t, enum.ThemeLight, Initialize(Env{Storage: newMemStorage(), Ambient: ambient{dark: false}}))
	})

	t.Run("no stored value and no ambient query", func(t *testing.T) {
		assert.Equal(t, enum.ThemeLight, Initialize(Env{Storage: newMemStorage()}))
	})

	t.Run("storage read error treated as no preference", func(t *testing.T) {
		st := newMemStorage(Key, "light")
		st.getErr = errors.New("blocked")
		assert.Equal(t, enum.ThemeDark, Initialize(Env{Storage: st, Ambient: ambient{dark: true}}))
	})

	t.Run("ambient error treated as light", func(t *testing.T) {
		env := Env{Storage: newMemStorage(), Ambient: ambient{dark: true, err: ErrUnavailable}}
		assert.Equal(t, enum.ThemeLight, Initialize(env))
	})

	t.Run("ambient only", func(t *testing.T) {
		assert.Equal(t, enum.ThemeDark, Initialize(Env{Ambient: ambient{dark: true}}))
	})

	t.Run("ambient queried only without explicit preference", func(t *testing.T) {
		q := &countingAmbient{}
		assert.Equal(t, enum.ThemeLight, Initialize(Env{Storage: newMemStorage(Key, "light"), Ambient: q}))
		assert.Equal(t, 0, q.calls)
		assert.Equal(t, enum.ThemeDark, Initialize(Env{Storage: newMemStorage(), Ambient: q}))
		assert.Equal(t, 1, q.calls)
	})

	t.Run("invalid stored value falls back to ambient", func(t *testing.T) {
		env := Env{Storage: newMemStorage(Key, "sepia"), Ambient: ambient{dark: true}}
		assert.Equal(t, enum.ThemeDark, Initialize(env))
	})
}

func TestStore_New(t *testing.T) {
	marker := &recMarker{}
	var changes []enum.Theme
	st := New(Env{
		Storage:  newMemStorage(Key, "dark"),
		Marker:   marker,
		OnChange: func(th enum.Theme) { changes = append(changes, th) },
	})

	assert.Equal(t, enum.ThemeDark, st.Theme())
	assert.Equal(t, []bool{true}, marker.calls, "marker applied once for the initial state")
	assert.Equal(t, []enum.Theme{enum.ThemeDark}, changes)
}

func TestStore_Toggle(t *testing.T) {
	t.Run("involutive with persistence", func(t *testing.T) {
		for _, initial := range []string{"light", "dark"} {
			storage := newMemStorage(Key, initial)
			st := New(Env{Storage: storage})
			start := st.Theme()

			st.Toggle()
			assert.NotEqual(t, start, st.Theme())
			st.Toggle()
			assert.Equal(t, start, st.Theme())
			assert.Equal(t, initial, storage.data[Key])
			assert.Equal(t, 2, storage.writes)
		}
	})

	t.Run("marker follows every toggle", func(t *testing.T) {
		marker := &recMarker{}
		st := New(Env{Storage: newMemStorage(), Marker: marker})
		for range 5 {
			th := st.Toggle()
			require.NotEmpty(t, marker.calls)
			assert.Equal(t, th.IsDark(), marker.calls[len(marker.calls)-1])
		}
		assert.Len(t, marker.calls, 6, "one initial call plus one per toggle")
	})

	t.Run("write failure keeps in-memory state", func(t *testing.T) {
		storage := newMemStorage()
		storage.setErr = errors.New("quota exceeded")
		st := New(Env{Storage: storage})
		assert.Equal(t, enum.ThemeDark, st.Toggle())
		assert.Equal(t, enum.ThemeDark, st.Theme())
		assert.Empty(t, storage.data)
	})

	t.Run("no storage", func(t *testing.T) {
		st := New(Env{})
		assert.Equal(t, enum.ThemeLight, st.Theme())
		assert.Equal(t, enum.ThemeDark, st.Toggle())
	})
}

func TestStore_Scenario(t *testing.T) {
	storage := newMemStorage()
	doc := &Document{}
	st := New(Env{Storage: storage, Ambient: ambient{dark: true}, Marker: doc})

	assert.Equal(t, enum.ThemeDark, st.Theme())
	assert.True(t, doc.Dark())
	_, err := storage.Get(Key)
	require.ErrorIs(t, err, ErrNotFound, "initialization doesn't persist")

	assert.Equal(t, enum.ThemeLight, st.Toggle())
	assert.Equal(t, "light", storage.data[Key])
	assert.False(t, doc.Dark())
	assert.Empty(t, doc.RootClass())

	assert.Equal(t, enum.ThemeDark, st.Toggle())
	assert.Equal(t, "dark", storage.data[Key])
	assert.True(t, doc.Dark())
	assert.Equal(t, "dark", doc.RootClass())
}
