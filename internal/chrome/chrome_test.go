package chrome

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader(t *testing.T) {
	t.Run("ReadyHidesAfterDelay", func(t *testing.T) {
		l := NewLoader()
		l.Ready()
		assert.False(t, l.Hidden())
		assert.Eventually(t, l.Hidden, 2*time.Second, 10*time.Millisecond)
		assert.Equal(t, []string{HideClass}, l.Classes())
	})

	t.Run("LoadedIsIdempotent", func(t *testing.T) {
		l := NewLoader()
		l.Loaded()
		l.Loaded()
		l.Ready()
		assert.True(t, l.Hidden())
		assert.Equal(t, []string{HideClass}, l.Classes())
	})
}

func TestDropdown(t *testing.T) {
	d := NewDropdown("userDropdown", "logoutBtn")

	d.Toggle()
	assert.True(t, d.Active)

	d.Click("logoutBtn")
	assert.True(t, d.Active, "click inside the panel keeps it open")

	d.Click("userDropdown")
	assert.True(t, d.Active)

	d.Click("hero-banner")
	assert.False(t, d.Active)

	d.Toggle()
	d.Toggle()
	assert.False(t, d.Active)

	d.Toggle()
	d.ItemClicked()
	assert.False(t, d.Active)
}

func TestPasswordToggle(t *testing.T) {
	p := NewPasswordToggle("password")
	assert.Equal(t, InputPassword, p.Type)

	p.Toggle()
	assert.Equal(t, InputText, p.Type)
	assert.Equal(t, IconVisible, p.Icon)

	p.Toggle()
	assert.Equal(t, InputPassword, p.Type)
	assert.Equal(t, IconHidden, p.Icon)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(0, 0)

	require.NoError(t, r.Do("a", func(s *State) error {
		m, err := s.Menu(MenuUser)
		if err != nil {
			return err
		}
		m.Toggle()
		return nil
	}))

	require.NoError(t, r.Do("a", func(s *State) error {
		assert.True(t, s.Menus[MenuUser].Active)
		return nil
	}))
	require.NoError(t, r.Do("b", func(s *State) error {
		assert.False(t, s.Menus[MenuUser].Active)
		return nil
	}))

	err := r.Do("a", func(s *State) error {
		_, err := s.Menu("sidebar")
		return err
	})
	assert.ErrorIs(t, err, ErrUnknownMenu)

	err = r.Do("a", func(s *State) error {
		_, err := s.Password("pin")
		return err
	})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestBeginPage(t *testing.T) {
	s := NewState()
	s.BeginPage("index")
	s.Loader.Loaded()
	s.Menus[MenuUser].Toggle()
	s.Passwords["password"].Toggle()

	s.BeginPage("index")
	assert.True(t, s.Loader.Hidden(), "same page keeps its loader")
	assert.True(t, s.Menus[MenuUser].Active)

	s.BeginPage("")
	assert.True(t, s.Loader.Hidden(), "no page id keeps the current page")

	s.BeginPage("gallery")
	assert.Equal(t, "gallery", s.Page)
	assert.False(t, s.Loader.Hidden(), "a new page starts with the loader showing")
	assert.False(t, s.Menus[MenuUser].Active)
	assert.Equal(t, InputPassword, s.Passwords["password"].Type)

	s.Loader.Ready()
	assert.False(t, s.Loader.Hidden())
	assert.Eventually(t, s.Loader.Hidden, 2*time.Second, 10*time.Millisecond)
}

func TestRegistryEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	r := NewRegistry(time.Minute, 3)
	r.now = func() time.Time { return now }

	noop := func(*State) error { return nil }

	t.Run("MaxClients", func(t *testing.T) {
		for i, id := range []string{"a", "b", "c"} {
			now = now.Add(time.Duration(i) * time.Second)
			require.NoError(t, r.Do(id, noop))
		}
		require.NoError(t, r.Do("a", noop))
		require.NoError(t, r.Do("d", noop))

		assert.Equal(t, 3, r.Len())
		r.mu.Lock()
		_, hasB := r.clients["b"]
		_, hasA := r.clients["a"]
		r.mu.Unlock()
		assert.False(t, hasB, "least recently seen client is evicted")
		assert.True(t, hasA)
	})

	t.Run("IdleTTL", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		require.NoError(t, r.Do("e", noop))
		assert.Equal(t, 1, r.Len())
	})

	t.Run("ManyAnonymousClients", func(t *testing.T) {
		for i := 0; i < 1000; i++ {
			require.NoError(t, r.Do(fmt.Sprintf("client-%d", i), noop))
		}
		assert.LessOrEqual(t, r.Len(), 3)
	})
}
