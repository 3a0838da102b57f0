package prefs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPersister is an in-memory Persister with optional injected failure.
type memoryPersister struct {
	values  map[string]string
	failing bool
}

func newMemoryPersister() *memoryPersister {
	return &memoryPersister{values: make(map[string]string)}
}

func (p *memoryPersister) Get(visitorID, key string) (string, error) {
	v, ok := p.values[visitorID+"/"+key]
	if !ok {
		return "", errors.New("not found")
	}
	return v, nil
}

func (p *memoryPersister) GetAll(visitorID string) (map[string]string, error) {
	out := make(map[string]string)
	for k, v := range p.values {
		prefix := visitorID + "/"
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			out[k[len(prefix):]] = v
		}
	}
	return out, nil
}

func (p *memoryPersister) Set(visitorID, key, value string) error {
	if p.failing {
		return errors.New("storage unavailable")
	}
	p.values[visitorID+"/"+key] = value
	return nil
}

func (p *memoryPersister) Delete(visitorID, key string) error {
	delete(p.values, visitorID+"/"+key)
	return nil
}

func newBootedStore(t *testing.T, hint string) (*Store, *memoryPersister) {
	t.Helper()
	persister := newMemoryPersister()
	store := NewStore("visitor-1", persister)
	store.Boot(hint)
	return store, persister
}

func TestStore_SetGet_RoundTrip(t *testing.T) {
	store, _ := newBootedStore(t, "")

	tests := []struct {
		key   Key
		value string
	}{
		{KeyTheme, ThemeLight},
		{KeyTheme, ThemeDark},
		{KeyLocale, "fr"},
		{KeyLocale, "ar"},
		{KeyLocale, "es"},
		{KeyLocale, "en"},
		{KeyAccessibility, `{"fontSize":"large","contrast":"high","reducedMotion":true,"focusMode":false}`},
	}

	for _, tt := range tests {
		require.True(t, store.Set(tt.key, tt.value), "set %s=%s", tt.key, tt.value)
		if tt.key == KeyAccessibility {
			a := store.Accessibility()
			assert.Equal(t, FontSizeLarge, a.FontSize)
			assert.Equal(t, ContrastHigh, a.Contrast)
			assert.True(t, a.ReducedMotion)
		} else {
			assert.Equal(t, tt.value, store.Get(tt.key))
		}
	}
}

func TestStore_Set_InvalidLeavesPriorValue(t *testing.T) {
	store, _ := newBootedStore(t, "")

	require.True(t, store.Set(KeyTheme, ThemeLight))

	assert.False(t, store.Set(KeyTheme, "neon"))
	assert.Equal(t, ThemeLight, store.Get(KeyTheme))

	assert.False(t, store.Set(KeyLocale, "de"))
	assert.Equal(t, "en", store.Get(KeyLocale))

	assert.False(t, store.Set(KeyAccessibility, `{"fontSize":"huge"}`))
	assert.Equal(t, DefaultAccessibility(), store.Accessibility())

	assert.False(t, store.Set(KeyAccessibility, `{not json`))
	assert.Equal(t, DefaultAccessibility(), store.Accessibility())
}

func TestStore_Set_UnknownKeyIgnored(t *testing.T) {
	store, _ := newBootedStore(t, "")
	assert.False(t, store.Set(Key("volume"), "11"))
}

func TestStore_Reset_RestoresDefaultAndNotifiesOnce(t *testing.T) {
	store, _ := newBootedStore(t, "")

	require.True(t, store.Set(KeyLocale, "ar"))

	calls := 0
	var got string
	unsubscribe := store.Subscribe(KeyLocale, func(value string) {
		calls++
		got = value
	})
	defer unsubscribe()

	store.Reset(KeyLocale)

	assert.Equal(t, "en", store.Get(KeyLocale))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "en", got)
}

func TestStore_Subscribe_MultipleIndependent(t *testing.T) {
	store, _ := newBootedStore(t, "")

	var first, second int
	unsubFirst := store.Subscribe(KeyTheme, func(string) { first++ })
	unsubSecond := store.Subscribe(KeyTheme, func(string) { second++ })
	defer unsubSecond()

	store.Set(KeyTheme, ThemeLight)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	// Removing one subscriber must not affect the other
	unsubFirst()
	store.Set(KeyTheme, ThemeDark)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestStore_Subscribe_NotNotifiedOnInvalidSet(t *testing.T) {
	store, _ := newBootedStore(t, "")

	calls := 0
	defer store.Subscribe(KeyTheme, func(string) { calls++ })()

	store.Set(KeyTheme, "neon")
	assert.Equal(t, 0, calls)
}

func TestStore_Boot_MalformedAccessibilityFallsBack(t *testing.T) {
	persister := newMemoryPersister()
	persister.values["visitor-1/accessibility"] = `{corrupt json!!`

	store := NewStore("visitor-1", persister)
	store.Boot("")

	assert.Equal(t, DefaultAccessibility(), store.Accessibility())
}

func TestStore_Boot_NoThemeUsesOSHintAndPersists(t *testing.T) {
	persister := newMemoryPersister()

	store := NewStore("visitor-1", persister)
	store.Boot(ThemeLight)
	assert.Equal(t, ThemeLight, store.Theme())

	// Second boot: OS now reports dark, but the stored choice wins
	rebooted := NewStore("visitor-1", persister)
	rebooted.Boot(ThemeDark)
	assert.Equal(t, ThemeLight, rebooted.Theme())
}

func TestStore_Boot_NoThemeNoHintDefaultsDark(t *testing.T) {
	store, persister := newBootedStore(t, "")
	assert.Equal(t, ThemeDark, store.Theme())

	// Resolution is persisted so later boots are stable
	stored, err := persister.Get("visitor-1", "theme")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, stored)
}

func TestStore_PersistenceFailureKeepsMemoryValue(t *testing.T) {
	persister := newMemoryPersister()
	store := NewStore("visitor-1", persister)
	store.Boot("")

	persister.failing = true

	require.True(t, store.Set(KeyTheme, ThemeLight))
	assert.Equal(t, ThemeLight, store.Get(KeyTheme))
}

func TestStore_Document(t *testing.T) {
	store, _ := newBootedStore(t, "")

	store.Set(KeyLocale, "ar")
	store.Set(KeyAccessibility, `{"fontSize":"xlarge","contrast":"ultra","reducedMotion":true,"focusMode":true}`)

	doc := store.Document()
	assert.Equal(t, "ar", doc.Lang)
	assert.Equal(t, "rtl", doc.Dir)
	assert.Contains(t, doc.RootClasses, "dark")
	assert.Contains(t, doc.RootClasses, "text-xl")
	assert.Contains(t, doc.RootClasses, "ultra-contrast")
	assert.Contains(t, doc.RootClasses, "reduce-motion")
	assert.Contains(t, doc.RootClasses, "focus-mode")

	store.Set(KeyLocale, "en")
	assert.Equal(t, "ltr", store.Document().Dir)
}

func TestStore_Close_DetachesSubscribers(t *testing.T) {
	store, _ := newBootedStore(t, "")

	calls := 0
	store.Subscribe(KeyTheme, func(string) { calls++ })

	store.Close()
	store.Set(KeyTheme, ThemeLight)
	assert.Equal(t, 0, calls)
}
